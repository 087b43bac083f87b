package zobrist

import (
	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// KeyFunc maps an element to its 64-bit key. The mapping must be
// deterministic within a process run: the same logical value always
// produces the same key. Two distinct elements mapping to the same key
// are indistinguishable to the set.
type KeyFunc[E any] func(E) uint64

const (
	keySeed     uint64 = 0x9e3779b97f4a7c15
	fnv64Offset uint64 = 1469598103934665603
	fnv64Prime  uint64 = 1099511628211
)

// BytesKey hashes raw bytes with xxhash.
func BytesKey(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// StringKey hashes a string with xxhash without copying it.
func StringKey(s string) uint64 {
	return xxhash.Sum64String(s)
}

// UintKey mixes a single integer through seeded FNV-1a. Plain integer
// values make poor keys directly (0 would cancel nothing, sequential
// values differ in few bits), so they are run through the mixer first.
func UintKey[T constraints.Integer](v T) uint64 {
	state := fnv64Offset ^ keySeed
	u := uint64(v)
	for i := 0; i < 8; i++ {
		state ^= u & 0xff
		state *= fnv64Prime
		u >>= 8
	}
	return state
}
