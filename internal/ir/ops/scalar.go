package ops

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/laze-ml/laze/internal/ir"
	"github.com/laze-ml/laze/internal/shape"
	"github.com/laze-ml/laze/internal/trace"
)

// scalarDomain separates scalar seed digests from node digests.
const scalarDomain = "laze/scalar/v1"

// Scalar is a leaf carrying a constant value. The value is folded into
// the node's hash seed, so equal constants share identity while
// different constants never merge.
type Scalar struct {
	ir.Base
	value float64
}

// ScalarSeed derives the hash seed for a constant of the given element
// type and value.
func ScalarSeed(dtype shape.DataType, value float64) uint32 {
	h := sha256.New()
	h.Write([]byte(scalarDomain))
	h.Write([]byte{0})
	h.Write([]byte(dtype.String()))
	var bits [8]byte
	binary.BigEndian.PutUint64(bits[:], math.Float64bits(value))
	h.Write(bits[:])
	return binary.BigEndian.Uint32(h.Sum(nil)[:4])
}

// NewScalar constructs a constant leaf through the trace context. The
// shape is usually rank zero; any shape is accepted for splatted
// constants.
func NewScalar(tc *trace.Context, sh shape.Shape, value float64) ir.Node {
	tc.Validate(ir.KindScalar, 0, 1)
	seed := ScalarSeed(sh.DType(), value)
	if n, ok := tc.TryReuse(ir.KindScalar, sh, nil, seed); ok {
		return n
	}
	n := &Scalar{
		Base:  ir.MakeBase(ir.KindScalar, sh, nil, 1, seed),
		value: value,
	}
	tc.Register(n)
	return n
}

// Value returns the constant.
func (s *Scalar) Value() float64 {
	return s.value
}

// String appends the constant to the base description.
func (s *Scalar) String() string {
	return fmt.Sprintf("%s, value=%g", s.Base.String(), s.value)
}

// CastScalar returns the node as a Scalar leaf when both its kind and
// its concrete type match.
func CastScalar(n ir.Node) (*Scalar, bool) {
	return ir.NodeCast[*Scalar](n, ir.KindScalar)
}
