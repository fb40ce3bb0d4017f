package shape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Shape describes the element type and ordered dimension sizes of a tensor
// value. Shapes are immutable after construction; accessors never expose
// internal state for mutation.
type Shape struct {
	dtype DataType
	dims  []int
}

// New builds a shape from an element type and dimension sizes. A shape
// with no dimensions is a scalar. Unknown element types and non-positive
// dimensions are programming errors and panic.
func New(dtype DataType, dims ...int) Shape {
	if !dtype.valid() {
		panic(errors.Errorf("shape: unknown data type %d", int(dtype)))
	}
	for i, dim := range dims {
		if dim <= 0 {
			panic(errors.Errorf("shape: invalid dimension %d at index %d (must be > 0)", dim, i))
		}
	}
	cloned := make([]int, len(dims))
	copy(cloned, dims)
	return Shape{dtype: dtype, dims: cloned}
}

// DType returns the element type.
func (s Shape) DType() DataType {
	return s.dtype
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s.dims)
}

// Dims returns a copy of the dimension sizes.
func (s Shape) Dims() []int {
	cloned := make([]int, len(s.dims))
	copy(cloned, s.dims)
	return cloned
}

// Dim returns the size of dimension i.
func (s Shape) Dim(i int) int {
	if i < 0 || i >= len(s.dims) {
		panic(errors.Errorf("shape: dimension index %d out of range for rank %d", i, len(s.dims)))
	}
	return s.dims[i]
}

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s.dims {
		n *= dim
	}
	return n
}

// ByteSize returns the number of bytes needed to store the elements
// contiguously.
func (s Shape) ByteSize() int {
	return s.NumElements() * s.dtype.Size()
}

// Equal checks if two shapes have the same element type and dimensions.
// This is the only notion of shape identity in the IR.
func (s Shape) Equal(other Shape) bool {
	if s.dtype != other.dtype || len(s.dims) != len(other.dims) {
		return false
	}
	for i := range s.dims {
		if s.dims[i] != other.dims[i] {
			return false
		}
	}
	return true
}

// String renders the shape as "float32[3,4]". Scalars render as
// "float32[]".
func (s Shape) String() string {
	parts := make([]string, len(s.dims))
	for i, dim := range s.dims {
		parts[i] = strconv.Itoa(dim)
	}
	return fmt.Sprintf("%s[%s]", s.dtype, strings.Join(parts, ","))
}
