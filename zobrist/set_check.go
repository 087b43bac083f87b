//go:build zobristcheck

package zobrist

import "fmt"

// Set is the Zobrist fingerprint of a caller-defined element set. This
// build carries a bounded shadow set that independently tracks
// membership and panics on misuse; the fingerprint transitions
// themselves are identical to the release build for any call sequence
// the shadow would not reject. Set remains a value type: the shadow is
// a plain array, so copies never alias.
type Set[E any] struct {
	value   uint64
	keyFn   KeyFunc[E]
	checker memberSet
	checked bool
}

// Empty returns a set with no elements, fingerprint 0, and an attached
// shadow checker.
func Empty[E any](keyFn KeyFunc[E]) Set[E] {
	return Set[E]{keyFn: keyFn, checked: true}
}

// FromUint64 reconstructs a set from a previously extracted
// fingerprint. The element set behind a raw fingerprint is unknowable,
// so the shadow checker is disabled on the result.
func FromUint64[E any](keyFn KeyFunc[E], raw uint64) Set[E] {
	return Set[E]{value: raw, keyFn: keyFn}
}

// Add folds key into the fingerprint. Panics if key is already present.
func (s *Set[E]) Add(key E) {
	p := s.keyFn(key)
	if s.checked && !s.checker.insert(p) {
		panic(fmt.Sprintf("zobrist: Add of element already present (key %016x)", p))
	}
	s.value ^= p
}

// Remove folds key out of the fingerprint. Panics if key is not present.
func (s *Set[E]) Remove(key E) {
	p := s.keyFn(key)
	if s.checked && !s.checker.remove(p) {
		panic(fmt.Sprintf("zobrist: Remove of element not present (key %016x)", p))
	}
	s.value ^= p
}
