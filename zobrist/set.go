// Package zobrist implements Zobrist hashing: an incremental,
// order-independent fingerprint of a mutable set of keyed elements.
//
// A Set maintains a single uint64 which is the XOR of the key of every
// element currently present. Adding or removing an element is one XOR,
// so the fingerprint tracks a large mutable collection in O(1) per
// change without storing the collection itself. No key table is kept;
// keys are computed on demand by the KeyFunc bound at construction,
// which keeps the set context-free and copiable.
//
// Builds with the zobristcheck tag additionally validate call
// discipline: adding an element that is already present, or removing
// one that is not, panics. Release builds carry no shadow state, perform
// no checking, and have no failure mode.
package zobrist

import "fmt"

// Uint64 returns the current fingerprint. An empty set reports 0, and
// any balanced sequence of adds and removes returns to 0.
func (s Set[E]) Uint64() uint64 {
	return s.value
}

func (s Set[E]) String() string {
	return fmt.Sprintf("zobrist.Set(%016x)", s.value)
}

// fold XORs the key of e into the fingerprint. XOR is self-inverse, so
// folding the same key twice is a no-op; add and remove share this.
func (s *Set[E]) fold(key E) {
	s.value ^= s.keyFn(key)
}
