// Package trace drives deferred graph construction: a single-goroutine
// context owning the reuse cache, a reference to the operator registry,
// and construction counters.
//
// Reuse is positional, not global. The cache remembers the order nodes
// were built in, a cursor walks that order, and lookups only match at or
// after the cursor. A program rebuilt identically every scope therefore
// hits the cache in lockstep, while two identical-shape leaves built
// inside one scope stay distinct nodes.
//
// A Context is not safe for concurrent use. Independent contexts on
// separate goroutines are fine; they share nothing.
package trace

import (
	"github.com/pkg/errors"

	"github.com/laze-ml/laze/internal/ir"
	"github.com/laze-ml/laze/internal/shape"
)

// Stats counts construction activity on a context.
type Stats struct {
	NodesConstructed uint64 // requests that allocated a fresh node body
	NodesReused      uint64 // requests satisfied from the cache
	CacheInserts     uint64 // nodes filed into the reuse cache
	HashCollisions   uint64 // digest matches rejected by the equality check
	ScopesBegun      uint64 // BeginScope calls
}

// Context is the construction state for one trace.
type Context struct {
	registry *ir.Registry
	reuse    bool
	cache    reuseCache
	stats    Stats
}

// Option configures a Context.
type Option func(*Context)

// WithRegistry sets the operator registry consulted for validation and
// hash seeds.
func WithRegistry(r *ir.Registry) Option {
	return func(c *Context) {
		if r == nil {
			panic(errors.Errorf("trace: nil registry"))
		}
		c.registry = r
	}
}

// WithReuse sets the initial reuse mode.
func WithReuse(enabled bool) Option {
	return func(c *Context) {
		c.reuse = enabled
	}
}

// New creates a trace context. Reuse starts enabled and the builtin
// registry applies unless overridden.
func New(opts ...Option) *Context {
	c := &Context{
		registry: ir.NewRegistry(),
		reuse:    true,
	}
	c.cache.gen = 1
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the registry this context validates against.
func (c *Context) Registry() *ir.Registry {
	return c.registry
}

// ReuseEnabled reports whether construction consults the cache.
func (c *Context) ReuseEnabled() bool {
	return c.reuse
}

// SetReuse toggles cache participation. Disabling stops both lookups and
// registrations; existing entries stay put and age out at the next scope
// boundary unless re-touched.
func (c *Context) SetReuse(enabled bool) {
	c.reuse = enabled
}

// Validate checks a construction request against the registry and
// returns the kind's registration. Violations panic.
func (c *Context) Validate(kind ir.OpKind, numOperands, numOutputs int) ir.OpInfo {
	return c.registry.Validate(kind, numOperands, numOutputs)
}

// TryReuse looks for an existing node matching the construction request
// at or after the cursor. The candidate digest is computed exactly as
// construction would compute it, without allocating a body. A digest
// match alone never wins: the full equality check (kind, seed, shape,
// operand sequence) must pass too. On a hit the cursor advances past the
// entry and the cached node is returned; on a miss the caller must
// allocate and Register.
func (c *Context) TryReuse(kind ir.OpKind, sh shape.Shape, operands []ir.Operand, seed uint32) (ir.Node, bool) {
	if !c.reuse {
		c.stats.NodesConstructed++
		return nil, false
	}
	ir.ValidateOperands(operands)
	h := ir.StructuralHash(kind, sh, operands, seed)

	n, collisions, ok := c.cache.lookup(h, kind, sh, operands, seed)
	c.stats.HashCollisions += collisions
	if ok {
		c.stats.NodesReused++
		return n, true
	}
	c.stats.NodesConstructed++
	return nil, false
}

// Register files a freshly allocated node at the cursor and advances the
// cursor past it, preserving trace order for the lookups that follow.
// No-op while reuse is disabled.
func (c *Context) Register(n ir.Node) {
	if !c.reuse {
		return
	}
	if n == nil {
		panic(errors.Errorf("trace: register nil node"))
	}
	c.cache.insert(n)
	c.stats.CacheInserts++
}

// Construct builds a node of a registered kind: registry validation,
// reuse lookup, then a generic body on a miss. Variants with payloads
// call TryReuse and Register themselves and participate identically.
func (c *Context) Construct(kind ir.OpKind, sh shape.Shape, operands []ir.Operand, numOutputs int) ir.Node {
	info := c.Validate(kind, len(operands), numOutputs)
	if n, ok := c.TryReuse(kind, sh, operands, info.Seed); ok {
		return n
	}
	n := ir.NewGeneric(kind, sh, operands, numOutputs, info.Seed)
	c.Register(n)
	return n
}

// BeginScope marks a trace boundary: entries untouched during the scope
// that just ended are dropped, survivors keep their relative order, and
// the cursor rewinds to the start. A context begins life inside an
// implicit first scope.
func (c *Context) BeginScope() {
	c.cache.beginScope()
	c.stats.ScopesBegun++
}

// CacheLen returns the number of live cache entries.
func (c *Context) CacheLen() int {
	return len(c.cache.entries)
}

// Stats returns a snapshot of the construction counters.
func (c *Context) Stats() Stats {
	return c.stats
}

// ResetStats zeroes the construction counters.
func (c *Context) ResetStats() {
	c.stats = Stats{}
}
