package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laze-ml/laze/internal/ir"
	"github.com/laze-ml/laze/internal/shape"
)

func f32(dims ...int) shape.Shape {
	return shape.New(shape.Float32, dims...)
}

// buildLeaf constructs a zero-operand node distinguishable by its shape.
func buildLeaf(tc *Context, dims ...int) ir.Node {
	return tc.Construct(ir.KindScalar, f32(dims...), nil, 1)
}

func TestSteadyStateReuse(t *testing.T) {
	tc := New()

	program := func() []ir.Node {
		a := buildLeaf(tc, 3, 4)
		b := buildLeaf(tc, 4, 2)
		mm := tc.Construct(ir.KindMatMul, f32(3, 2), []ir.Operand{{Node: a, Index: 0}, {Node: b, Index: 0}}, 1)
		out := tc.Construct(ir.KindReLU, f32(3, 2), []ir.Operand{{Node: mm, Index: 0}}, 1)
		return []ir.Node{a, b, mm, out}
	}

	first := program()
	require.Equal(t, 4, tc.CacheLen())

	for step := 0; step < 3; step++ {
		tc.BeginScope()
		again := program()
		for i := range first {
			assert.Same(t, first[i], again[i], "node %d changed identity in step %d", i, step)
		}
		assert.Equal(t, 4, tc.CacheLen())
	}

	stats := tc.Stats()
	assert.Equal(t, uint64(4), stats.NodesConstructed)
	assert.Equal(t, uint64(12), stats.NodesReused)
	assert.Equal(t, uint64(4), stats.CacheInserts)
	assert.Equal(t, uint64(0), stats.HashCollisions)
}

func TestCursorInsertionOrdering(t *testing.T) {
	tc := New()

	a1 := buildLeaf(tc, 1)
	b1 := buildLeaf(tc, 2)
	c1 := buildLeaf(tc, 3)
	require.Equal(t, 3, tc.CacheLen())

	// Next scope builds A, then a node the cache has never seen, then C.
	tc.BeginScope()
	a2 := buildLeaf(tc, 1)
	x := buildLeaf(tc, 9)
	c2 := buildLeaf(tc, 3)

	assert.Same(t, a1, a2, "first leaf should come from the cache")
	assert.Same(t, c1, c2, "third leaf should be found past the cursor")
	assert.NotSame(t, b1, x)
	assert.Equal(t, 4, tc.CacheLen(), "X inserts without evicting")

	// B went untouched, so the scope boundary drops it.
	tc.BeginScope()
	assert.Equal(t, 3, tc.CacheLen())

	b3 := buildLeaf(tc, 2)
	assert.NotSame(t, b1, b3, "dropped node must not resurface")
}

func TestSameScopeDuplicatesStayDistinct(t *testing.T) {
	tc := New()

	first := buildLeaf(tc, 3, 4)
	second := buildLeaf(tc, 3, 4)

	require.Equal(t, first.Hash(), second.Hash(), "structurally identical leaves")
	assert.NotSame(t, first, second, "lookups never match before the cursor")
	assert.Equal(t, 2, tc.CacheLen())

	// The pairing stays positional across scopes.
	tc.BeginScope()
	againFirst := buildLeaf(tc, 3, 4)
	againSecond := buildLeaf(tc, 3, 4)
	assert.Same(t, first, againFirst)
	assert.Same(t, second, againSecond)
}

func TestReuseDisabled(t *testing.T) {
	tc := New(WithReuse(false))

	first := buildLeaf(tc, 2, 2)
	second := buildLeaf(tc, 2, 2)

	assert.NotSame(t, first, second)
	assert.Equal(t, 0, tc.CacheLen(), "disabled mode never caches")

	stats := tc.Stats()
	assert.Equal(t, uint64(2), stats.NodesConstructed)
	assert.Equal(t, uint64(0), stats.NodesReused)
	assert.Equal(t, uint64(0), stats.CacheInserts)
}

func TestSetReuseMidTrace(t *testing.T) {
	tc := New()

	a := buildLeaf(tc, 5)
	require.Equal(t, 1, tc.CacheLen())

	tc.SetReuse(false)
	assert.False(t, tc.ReuseEnabled())
	detached := buildLeaf(tc, 5)
	assert.NotSame(t, a, detached)
	assert.Equal(t, 1, tc.CacheLen())

	// Re-enabling makes the old entry reachable again in the next scope.
	tc.SetReuse(true)
	tc.BeginScope()
	assert.Same(t, a, buildLeaf(tc, 5))

	// Two boundaries with no touches in between age the entry out.
	tc.BeginScope()
	tc.BeginScope()
	assert.Equal(t, 0, tc.CacheLen())
}

func TestRegisterDisabledIsNoop(t *testing.T) {
	tc := New(WithReuse(false))
	n := ir.NewGeneric(ir.KindScalar, f32(1), nil, 1, ir.DefaultHashSeed)

	tc.Register(n)
	assert.Equal(t, 0, tc.CacheLen())
}

func TestRegisterNilPanics(t *testing.T) {
	tc := New()
	assert.Panics(t, func() { tc.Register(nil) })
}

func TestConstructValidates(t *testing.T) {
	tc := New()
	a := buildLeaf(tc, 2)

	assert.Panics(t, func() {
		tc.Construct(ir.OpKind{Namespace: "tensor", Name: "fused_gelu"}, f32(2), nil, 1)
	}, "unknown kind")

	assert.Panics(t, func() {
		tc.Construct(ir.KindAdd, f32(2), []ir.Operand{{Node: a, Index: 0}}, 1)
	}, "arity mismatch")

	assert.Panics(t, func() {
		tc.Construct(ir.KindAdd, f32(2), []ir.Operand{{Node: a, Index: 0}, {Node: nil, Index: 0}}, 1)
	}, "nil operand")
}

func TestMultiOutputConstruction(t *testing.T) {
	tc := New()

	src := buildLeaf(tc, 4, 4)
	parts := tc.Construct(ir.KindChunk, f32(2, 4), []ir.Operand{{Node: src, Index: 0}}, 2)
	require.Equal(t, 2, parts.NumOutputs())

	lo := tc.Construct(ir.KindNeg, f32(2, 4), []ir.Operand{{Node: parts, Index: 0}}, 1)
	hi := tc.Construct(ir.KindNeg, f32(2, 4), []ir.Operand{{Node: parts, Index: 1}}, 1)
	assert.NotSame(t, lo, hi)
	assert.NotEqual(t, lo.Hash(), hi.Hash(), "output index must separate consumers")

	tc.BeginScope()
	assert.Same(t, parts, tc.Construct(ir.KindChunk, f32(2, 4), []ir.Operand{{Node: src, Index: 0}}, 2))

	assert.Panics(t, func() {
		tc.Construct(ir.KindNeg, f32(2, 4), []ir.Operand{{Node: parts, Index: 2}}, 1)
	}, "output index out of range")
}

func TestWithRegistry(t *testing.T) {
	r := ir.NewRegistry()
	fused := ir.OpKind{Namespace: "tensor", Name: "fused_gelu"}
	r.Register(fused, ir.OpInfo{Seed: 77, Arity: 1, NumOutputs: 1})

	tc := New(WithRegistry(r))
	a := buildLeaf(tc, 8)
	n := tc.Construct(fused, f32(8), []ir.Operand{{Node: a, Index: 0}}, 1)

	assert.Equal(t, fused, n.Kind())
	assert.Equal(t, uint32(77), n.HashSeed())

	assert.Panics(t, func() { New(WithRegistry(nil)) })
}

func TestStatsReset(t *testing.T) {
	tc := New()
	buildLeaf(tc, 2)
	tc.BeginScope()
	buildLeaf(tc, 2)

	stats := tc.Stats()
	require.Equal(t, uint64(1), stats.NodesConstructed)
	require.Equal(t, uint64(1), stats.NodesReused)
	require.Equal(t, uint64(1), stats.ScopesBegun)

	tc.ResetStats()
	assert.Equal(t, Stats{}, tc.Stats())
	assert.Equal(t, 1, tc.CacheLen(), "counters reset, cache untouched")
}
