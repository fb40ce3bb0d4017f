// Copyright 2026 Laze ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package trace provides the public API for driving deferred graph
// construction.
//
// A Context owns the node reuse cache and the operator registry. Reuse
// is positional: rebuilding the same program every scope returns the
// same node pointers, while two identical constructions inside one
// scope stay distinct. Call BeginScope at each trace boundary, for
// example once per training step.
//
// Example:
//
//	tc := trace.New()
//	for step := 0; step < steps; step++ {
//	    if step > 0 {
//	        tc.BeginScope()
//	    }
//	    loss := buildForward(tc, batch)
//	    _ = loss
//	}
//	fmt.Printf("%+v\n", tc.Stats())
//
// A Context is not safe for concurrent use.
package trace

import (
	"github.com/laze-ml/laze/internal/ir"
	"github.com/laze-ml/laze/internal/trace"
)

// Context is the construction state for one trace.
type Context = trace.Context

// Stats counts construction activity on a context.
type Stats = trace.Stats

// Option configures a Context.
type Option = trace.Option

// New creates a trace context. Reuse starts enabled and the builtin
// registry applies unless overridden.
func New(opts ...Option) *Context {
	return trace.New(opts...)
}

// WithRegistry sets the operator registry the context validates
// against.
func WithRegistry(r *ir.Registry) Option {
	return trace.WithRegistry(r)
}

// WithReuse sets the initial reuse mode.
func WithReuse(enabled bool) Option {
	return trace.WithReuse(enabled)
}
