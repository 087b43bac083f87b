package collections

// Set tracks elements by their 64-bit probe key. Two elements with the
// same probe key are the same element as far as the set is concerned,
// matching the approximation the zobrist shadow checker makes.
type Set[E any] interface {
	Contains(e E) bool
	Add(e E) error
	Remove(e E) error
	Size() int
	Entries() []E
	Probes() []uint64
}
