package session

import (
	"encoding/hex"
	"hash/fnv"
)

// ID is the immutable identity a TLS session is known by, independent of the
// endpoint it was negotiated with. The zero value is the empty identity.
//
// IDs are comparable and may be used directly as map keys. The hash is
// computed once at construction; the bytes never change afterwards.
type ID struct {
	raw  string
	hash uint64
}

// NewID builds an ID from the raw identifier bytes. The bytes are copied, so
// the caller remains free to reuse id. Empty input is accepted; whether an
// empty identifier is meaningful is up to the caller.
func NewID(id []byte) ID {
	h := fnv.New64a()
	h.Write(id)
	return ID{raw: string(id), hash: h.Sum64()}
}

// Equal reports whether two IDs have byte-identical content.
func (id ID) Equal(other ID) bool {
	return id.raw == other.raw
}

// Hash returns the hash cached at construction. Equal IDs hash equally.
func (id ID) Hash() uint64 {
	return id.hash
}

// Len returns the length of the identifier in bytes.
func (id ID) Len() int {
	return len(id.raw)
}

// Bytes returns a copy of the identifier bytes. Mutating the returned slice
// does not affect the ID.
func (id ID) Bytes() []byte {
	return []byte(id.raw)
}

// String returns the identifier as lowercase hex, for logging.
func (id ID) String() string {
	return hex.EncodeToString([]byte(id.raw))
}
