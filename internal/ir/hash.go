package ir

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"

	"github.com/laze-ml/laze/internal/shape"
)

// Hash is the structural identity of a node: a SHA-256 digest over the
// node's canonical fields. Operand references contribute their own
// digests, so a node's hash identifies the whole subgraph beneath it.
type Hash [sha256.Size]byte

// String returns the full hex form.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Short returns the first 8 hex digits, for dumps and logs.
func (h Hash) Short() string {
	return hex.EncodeToString(h[:4])
}

// hashDomain separates node digests from every other SHA-256 use.
const hashDomain = "laze/node/v1"

// hasher accumulates length-prefixed fields into a SHA-256 digest.
// The prefixes keep adjacent variable-length fields from aliasing.
type hasher struct {
	h hash.Hash
}

func newHasher() hasher {
	hs := hasher{h: sha256.New()}
	hs.writeString(hashDomain)
	return hs
}

func (hs hasher) writeBytes(b []byte) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(b)))
	hs.h.Write(n[:])
	hs.h.Write(b)
}

func (hs hasher) writeString(s string) {
	hs.writeBytes([]byte(s))
}

func (hs hasher) writeUint64(v uint64) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], v)
	hs.h.Write(n[:])
}

func (hs hasher) writeInt(v int) {
	hs.writeUint64(uint64(int64(v)))
}

func (hs hasher) writeHash(h Hash) {
	hs.h.Write(h[:])
}

func (hs hasher) sum() Hash {
	var out Hash
	hs.h.Sum(out[:0])
	return out
}

// StructuralHash computes the digest construction assigns to a node with
// these fields, without allocating a node body. The encoding is
// order-sensitive: kind, element type, dimensions, hash seed, then each
// operand as its producer's digest plus the referenced output index.
func StructuralHash(kind OpKind, sh shape.Shape, operands []Operand, seed uint32) Hash {
	hs := newHasher()
	hs.writeString(kind.String())
	hs.writeString(sh.DType().String())
	hs.writeInt(sh.Rank())
	for i := 0; i < sh.Rank(); i++ {
		hs.writeInt(sh.Dim(i))
	}
	hs.writeUint64(uint64(seed))
	hs.writeInt(len(operands))
	for _, op := range operands {
		hs.writeHash(op.Node.Hash())
		hs.writeInt(op.Index)
	}
	return hs.sum()
}
