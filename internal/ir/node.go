package ir

import (
	"github.com/pkg/errors"

	"github.com/laze-ml/laze/internal/shape"
)

// Operand references one output of a producer node.
type Operand struct {
	Node  Node
	Index int
}

// Node is an immutable vertex of the deferred computation graph.
// Implementations embed Base, which carries every identity field.
type Node interface {
	// Kind returns the operator identity.
	Kind() OpKind

	// Shape returns the node's result shape.
	Shape() shape.Shape

	// NumOutputs returns how many values the node produces.
	NumOutputs() int

	// Operands returns the ordered input references.
	Operands() []Operand

	// HashSeed returns the seed mixed into the structural hash.
	HashSeed() uint32

	// Hash returns the structural digest of the node and its inputs.
	Hash() Hash

	// String renders a one-line description.
	String() string
}

// Base is the concrete identity core every node variant embeds. It is
// immutable after MakeBase: the operand list is cloned in and copied
// out, and the structural hash is computed exactly once.
type Base struct {
	kind       OpKind
	shape      shape.Shape
	operands   []Operand
	numOutputs int
	seed       uint32
	hash       Hash
}

// MakeBase validates and assembles the identity core of a node.
// Violations are programming errors and panic: empty kind, fewer than
// one output, nil operand nodes, operand output indexes out of range.
func MakeBase(kind OpKind, sh shape.Shape, operands []Operand, numOutputs int, seed uint32) Base {
	if kind.Namespace == "" || kind.Name == "" {
		panic(errors.Errorf("ir: empty operator kind"))
	}
	if numOutputs < 1 {
		panic(errors.Errorf("ir: %s with %d outputs (must be >= 1)", kind, numOutputs))
	}
	ValidateOperands(operands)
	cloned := make([]Operand, len(operands))
	copy(cloned, operands)
	return Base{
		kind:       kind,
		shape:      sh,
		operands:   cloned,
		numOutputs: numOutputs,
		seed:       seed,
		hash:       StructuralHash(kind, sh, cloned, seed),
	}
}

// ValidateOperands panics if any operand lacks a node or references an
// output index outside its producer's range.
func ValidateOperands(operands []Operand) {
	for i, op := range operands {
		if op.Node == nil {
			panic(errors.Errorf("ir: operand %d has nil node", i))
		}
		if op.Index < 0 || op.Index >= op.Node.NumOutputs() {
			panic(errors.Errorf("ir: operand %d references output %d of %s, which has %d outputs",
				i, op.Index, op.Node.Kind(), op.Node.NumOutputs()))
		}
	}
}

// Kind returns the operator identity.
func (b *Base) Kind() OpKind {
	return b.kind
}

// Shape returns the node's result shape.
func (b *Base) Shape() shape.Shape {
	return b.shape
}

// NumOutputs returns how many values the node produces.
func (b *Base) NumOutputs() int {
	return b.numOutputs
}

// Operands returns a copy of the ordered input references.
func (b *Base) Operands() []Operand {
	cloned := make([]Operand, len(b.operands))
	copy(cloned, b.operands)
	return cloned
}

// HashSeed returns the seed mixed into the structural hash.
func (b *Base) HashSeed() uint32 {
	return b.seed
}

// Hash returns the structural digest computed at construction.
func (b *Base) Hash() Hash {
	return b.hash
}

// String renders "float32[3,4] tensor::add". Variants append their
// payload after the base form.
func (b *Base) String() string {
	return b.shape.String() + " " + b.kind.String()
}

// Equates reports whether a node's identity fields match a construction
// request exactly: kind, hash seed, shape, and the operand sequence by
// producer identity and output index. This check backs every hash match;
// the digest alone never decides reuse.
func Equates(n Node, kind OpKind, sh shape.Shape, operands []Operand, seed uint32) bool {
	if n.Kind() != kind || n.HashSeed() != seed || !n.Shape().Equal(sh) {
		return false
	}
	got := n.Operands()
	if len(got) != len(operands) {
		return false
	}
	for i := range got {
		if got[i].Node != operands[i].Node || got[i].Index != operands[i].Index {
			return false
		}
	}
	return true
}

// Generic is the node body for registered kinds that carry no payload
// beyond their identity fields. Construction normally goes through a
// trace context so the node participates in reuse.
type Generic struct {
	Base
}

// NewGeneric allocates a Generic node.
func NewGeneric(kind OpKind, sh shape.Shape, operands []Operand, numOutputs int, seed uint32) *Generic {
	return &Generic{Base: MakeBase(kind, sh, operands, numOutputs, seed)}
}
