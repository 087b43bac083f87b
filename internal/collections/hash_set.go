package collections

type probeSet[E any] struct {
	entries  map[uint64]E
	hashFunc HashFunc[E]
}

type HashFunc[E any] func(E) uint64

func NewProbeSet[E any](f HashFunc[E]) Set[E] {
	return &probeSet[E]{
		entries:  make(map[uint64]E),
		hashFunc: f,
	}
}

func (s *probeSet[E]) Contains(e E) bool {
	if _, ok := s.entries[s.hashFunc(e)]; ok {
		return true
	}
	return false
}

func (s *probeSet[E]) Add(e E) error {
	if s.Contains(e) {
		return ErrValueExisted
	}
	s.entries[s.hashFunc(e)] = e
	return nil
}

func (s *probeSet[E]) Remove(e E) error {
	if !s.Contains(e) {
		return ErrValueNotExisted
	}
	delete(s.entries, s.hashFunc(e))
	return nil
}

func (s *probeSet[E]) Size() int {
	return len(s.entries)
}

func (s *probeSet[E]) Entries() []E {
	arr := make([]E, 0, s.Size())
	for _, e := range s.entries {
		arr = append(arr, e)
	}
	return arr
}

func (s *probeSet[E]) Probes() []uint64 {
	arr := make([]uint64, 0, s.Size())
	for p := range s.entries {
		arr = append(arr, p)
	}
	return arr
}
