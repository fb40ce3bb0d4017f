// Package ir implements the deferred computation graph: immutable nodes
// identified by a structural hash, with operands referencing outputs of
// previously built nodes so every graph is a DAG by construction.
//
// Node identity is defined by kind, shape, hash seed, and the ordered
// operand references. Variant payloads (a device handle, a constant
// value) ride along but never join the identity fields directly; a
// variant that needs value identity folds it into its hash seed.
package ir

import (
	"strings"

	"github.com/pkg/errors"
)

// OpKind identifies an operator: a namespace plus a name. OpKind is
// comparable and usable as a map key.
type OpKind struct {
	Namespace string
	Name      string
}

// String renders the kind as "namespace::name".
func (k OpKind) String() string {
	return k.Namespace + "::" + k.Name
}

// ParseKind parses the "namespace::name" form produced by String.
func ParseKind(s string) (OpKind, error) {
	ns, name, ok := strings.Cut(s, "::")
	if !ok || ns == "" || name == "" {
		return OpKind{}, errors.Errorf("malformed operator kind %q (want \"namespace::name\")", s)
	}
	return OpKind{Namespace: ns, Name: name}, nil
}

// Builtin operator kinds. The "laze" namespace holds structural leaves;
// the "tensor" namespace holds the tensor operator set.
var (
	KindDeviceData = OpKind{Namespace: "laze", Name: "device_data"}
	KindScalar     = OpKind{Namespace: "laze", Name: "scalar"}

	KindNeg       = OpKind{Namespace: "tensor", Name: "neg"}
	KindReLU      = OpKind{Namespace: "tensor", Name: "relu"}
	KindTanh      = OpKind{Namespace: "tensor", Name: "tanh"}
	KindExp       = OpKind{Namespace: "tensor", Name: "exp"}
	KindReshape   = OpKind{Namespace: "tensor", Name: "reshape"}
	KindTranspose = OpKind{Namespace: "tensor", Name: "transpose"}
	KindSum       = OpKind{Namespace: "tensor", Name: "sum"}
	KindCast      = OpKind{Namespace: "tensor", Name: "cast"}

	KindAdd    = OpKind{Namespace: "tensor", Name: "add"}
	KindSub    = OpKind{Namespace: "tensor", Name: "sub"}
	KindMul    = OpKind{Namespace: "tensor", Name: "mul"}
	KindDiv    = OpKind{Namespace: "tensor", Name: "div"}
	KindMatMul = OpKind{Namespace: "tensor", Name: "matmul"}

	KindConcat = OpKind{Namespace: "tensor", Name: "concat"}
	KindChunk  = OpKind{Namespace: "tensor", Name: "chunk"}
)
