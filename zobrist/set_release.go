//go:build !zobristcheck

package zobrist

// Set is the Zobrist fingerprint of a caller-defined element set. The
// type parameter E pins the element type so sets built over different
// element types cannot be mixed. Set is a value type: assignment
// produces a fully independent copy.
type Set[E any] struct {
	value uint64
	keyFn KeyFunc[E]
}

// Empty returns a set with no elements and fingerprint 0.
func Empty[E any](keyFn KeyFunc[E]) Set[E] {
	return Set[E]{keyFn: keyFn}
}

// FromUint64 reconstructs a set from a previously extracted
// fingerprint. Future behavior is identical to the set the raw value
// was taken from.
func FromUint64[E any](keyFn KeyFunc[E], raw uint64) Set[E] {
	return Set[E]{value: raw, keyFn: keyFn}
}

// Add folds key into the fingerprint.
func (s *Set[E]) Add(key E) {
	s.fold(key)
}

// Remove folds key out of the fingerprint.
func (s *Set[E]) Remove(key E) {
	s.fold(key)
}
