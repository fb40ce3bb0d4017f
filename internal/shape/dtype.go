// Package shape provides element types and dimensioned tensor shapes for
// the Laze IR. Shapes are immutable values: node identity and hashing both
// build on the canonical fields exposed here.
package shape

import "fmt"

// Element is a constraint for Go types that can back tensor elements.
// Float16 has no native Go type and is reachable only through explicit
// conversion constructors.
type Element interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool
}

// DataType represents runtime element type information for tensors.
type DataType int

// Supported element types.
const (
	Float32 DataType = iota
	Float64
	Float16
	Int32
	Int64
	Uint8
	Bool
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Float16:
		return 2
	case Uint8, Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Float16:
		return "float16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("unknown(%d)", int(dt))
	}
}

func (dt DataType) valid() bool {
	return dt >= Float32 && dt <= Bool
}

// ParseDataType converts a name produced by String back to a DataType.
func ParseDataType(name string) (DataType, error) {
	for dt := Float32; dt <= Bool; dt++ {
		if dt.String() == name {
			return dt, nil
		}
	}
	return 0, fmt.Errorf("unknown data type %q", name)
}

// DataTypeOf returns the DataType corresponding to a Go element type.
func DataTypeOf[T Element]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	default:
		panic("unsupported element type")
	}
}
