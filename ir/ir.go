// Copyright 2026 Laze ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ir

import (
	"github.com/laze-ml/laze/internal/ir"
	"github.com/laze-ml/laze/internal/shape"
)

// Type aliases for public API

// OpKind names an operator as namespace plus name, e.g. "tensor::add".
type OpKind = ir.OpKind

// Operand is a reference to one output of a producer node.
type Operand = ir.Operand

// Node is an immutable vertex in the deferred computation graph.
type Node = ir.Node

// Base is the embeddable common part of every node implementation.
type Base = ir.Base

// Generic is a node with no payload beyond the Base fields.
type Generic = ir.Generic

// Hash is a 32-byte structural digest.
type Hash = ir.Hash

// OpInfo is the registration record for an operator kind.
type OpInfo = ir.OpInfo

// Registry maps operator kinds to their registration records.
type Registry = ir.Registry

// Hash seed constants.
const (
	DefaultHashSeed    = ir.DefaultHashSeed
	DeviceDataHashSeed = ir.DeviceDataHashSeed
)

// Builtin operator kinds.
var (
	KindDeviceData = ir.KindDeviceData
	KindScalar     = ir.KindScalar
	KindNeg        = ir.KindNeg
	KindReLU       = ir.KindReLU
	KindTanh       = ir.KindTanh
	KindExp        = ir.KindExp
	KindReshape    = ir.KindReshape
	KindTranspose  = ir.KindTranspose
	KindSum        = ir.KindSum
	KindCast       = ir.KindCast
	KindAdd        = ir.KindAdd
	KindSub        = ir.KindSub
	KindMul        = ir.KindMul
	KindDiv        = ir.KindDiv
	KindMatMul     = ir.KindMatMul
	KindConcat     = ir.KindConcat
	KindChunk      = ir.KindChunk
)

// ParseKind parses the "namespace::name" form produced by OpKind.String.
func ParseKind(s string) (OpKind, error) {
	return ir.ParseKind(s)
}

// StructuralHash computes the content digest of a construction request:
// kind, shape, hash seed, and operand sequence, in a fixed field order.
func StructuralHash(kind OpKind, sh shape.Shape, operands []Operand, seed uint32) Hash {
	return ir.StructuralHash(kind, sh, operands, seed)
}

// MakeBase builds the common node part, validating operands and
// precomputing the structural hash. Invalid requests panic.
func MakeBase(kind OpKind, sh shape.Shape, operands []Operand, numOutputs int, seed uint32) Base {
	return ir.MakeBase(kind, sh, operands, numOutputs, seed)
}

// NewGeneric builds a payload-free node.
func NewGeneric(kind OpKind, sh shape.Shape, operands []Operand, numOutputs int, seed uint32) *Generic {
	return ir.NewGeneric(kind, sh, operands, numOutputs, seed)
}

// NodeCast downcasts a node to a concrete type after checking its kind.
// It returns false instead of panicking on any mismatch, including a
// nil node.
//
// Example:
//
//	if leaf, ok := ir.NodeCast[*ops.DeviceData](n, ir.KindDeviceData); ok {
//	    fmt.Println(leaf.Data().Device())
//	}
func NodeCast[T Node](n Node, kind OpKind) (T, bool) {
	return ir.NodeCast[T](n, kind)
}

// NewRegistry creates a registry preloaded with the builtin kinds.
func NewRegistry() *Registry {
	return ir.NewRegistry()
}

// PostOrder returns every node reachable from the roots, operands
// before users, each node exactly once.
func PostOrder(roots ...Node) []Node {
	return ir.PostOrder(roots...)
}

// DumpText renders the graph reachable from the roots as one line per
// node in post order.
func DumpText(roots ...Node) string {
	return ir.DumpText(roots...)
}

// DumpDot renders the graph reachable from the roots in Graphviz DOT
// format.
func DumpDot(roots ...Node) string {
	return ir.DumpDot(roots...)
}
