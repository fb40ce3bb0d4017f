// Copyright 2026 Laze ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ir provides the public API for the Laze deferred computation
// graph.
//
// # Overview
//
// Laze records tensor operations as immutable graph nodes instead of
// executing them. A node is its kind, its shape, and its operand
// sequence; a 32-byte structural hash over exactly those fields gives
// every node a content identity that a trace context uses to reuse
// nodes across training steps. This package exposes:
//   - Node, Operand, OpKind: the graph vocabulary
//   - StructuralHash, Hash: content identity
//   - Registry, OpInfo: operator metadata and validation
//   - NodeCast: checked downcasts to concrete node types
//   - PostOrder, DumpText, DumpDot: traversal and rendering
//
// # Basic Usage
//
//	import (
//	    "github.com/laze-ml/laze/ir"
//	    "github.com/laze-ml/laze/ir/ops"
//	    "github.com/laze-ml/laze/shape"
//	    "github.com/laze-ml/laze/trace"
//	)
//
//	func main() {
//	    tc := trace.New()
//	    a := ops.NewScalar(tc, shape.New(shape.Float32), 1.0)
//	    b := ops.NewScalar(tc, shape.New(shape.Float32), 2.0)
//	    sum := tc.Construct(ir.KindAdd, a.Shape(), []ir.Operand{{Node: a}, {Node: b}}, 1)
//	    fmt.Print(ir.DumpText(sum))
//	}
//
// Nodes never execute anything. Lowering a traced graph to device code
// is the job of a backend collaborator; the IR's contract ends at
// handing over a post-order node list.
package ir
