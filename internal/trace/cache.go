package trace

import (
	"slices"

	"github.com/laze-ml/laze/internal/ir"
	"github.com/laze-ml/laze/internal/shape"
)

// entry pairs a cached node with the digest it was filed under and the
// scope generation that last touched it.
type entry struct {
	node ir.Node
	hash ir.Hash
	gen  uint64
}

// reuseCache is the positional node cache: entries in trace order, a
// cursor marking how far the current scope has walked, and a generation
// stamp for staleness.
type reuseCache struct {
	entries []entry
	cursor  int
	gen     uint64
}

// lookup scans entries at or after the cursor for a structural match.
// Digest-equal entries that fail the field equality check count as
// collisions and the scan continues past them. On a match the entry is
// stamped with the current generation and the cursor moves past it.
func (rc *reuseCache) lookup(h ir.Hash, kind ir.OpKind, sh shape.Shape, operands []ir.Operand, seed uint32) (ir.Node, uint64, bool) {
	var collisions uint64
	for i := rc.cursor; i < len(rc.entries); i++ {
		e := &rc.entries[i]
		if e.hash != h {
			continue
		}
		if !ir.Equates(e.node, kind, sh, operands, seed) {
			collisions++
			continue
		}
		e.gen = rc.gen
		rc.cursor = i + 1
		return e.node, collisions, true
	}
	return nil, collisions, false
}

// insert files a node at the cursor and moves the cursor past it.
func (rc *reuseCache) insert(n ir.Node) {
	e := entry{node: n, hash: n.Hash(), gen: rc.gen}
	rc.entries = slices.Insert(rc.entries, rc.cursor, e)
	rc.cursor++
}

// beginScope drops entries not touched during the scope that just
// ended, keeps survivor order, rewinds the cursor, and opens the next
// generation.
func (rc *reuseCache) beginScope() {
	kept := rc.entries[:0]
	for _, e := range rc.entries {
		if e.gen == rc.gen {
			kept = append(kept, e)
		}
	}
	// Zero the tail so dropped nodes become collectible.
	tail := rc.entries[len(kept):]
	for i := range tail {
		tail[i] = entry{}
	}
	rc.entries = kept
	rc.cursor = 0
	rc.gen++
}
