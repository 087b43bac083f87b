package zobrist

import "fmt"

// checkerCapacity bounds the number of simultaneously present elements
// the shadow checker can track. Exceeding it in a zobristcheck build is
// fatal; raise the constant or reduce peak simultaneous elements.
const checkerCapacity = 8 * 1024

// memberSet is a bounded membership set over probe keys, used only to
// validate Set call discipline in zobristcheck builds. The backing
// store is a plain fixed array so the struct has true value semantics:
// assignment copies the whole array and copies never share state. It
// deliberately avoids maps and heap allocation, so the validation code
// cannot itself depend on the machinery it sanity-checks.
//
// Only keys[:count] is ever read; lookups are a linear scan, removal is
// a swap with the last occupied slot. Elements are identified by probe
// key alone, so two elements that collide under the key function are
// the same element as far as the checker is concerned.
type memberSet struct {
	keys  [checkerCapacity]uint64
	count int
}

// memberSetOf builds a checker already containing the given probe keys.
// Duplicates are dropped.
func memberSetOf(probes []uint64) memberSet {
	var m memberSet
	for _, p := range probes {
		m.insert(p)
	}
	return m
}

// insert records p as present. It reports false if p is already
// present, in which case nothing is mutated. Inserting into a full
// checker panics.
func (m *memberSet) insert(p uint64) bool {
	for i := 0; i < m.count; i++ {
		if m.keys[i] == p {
			return false
		}
	}
	if m.count == checkerCapacity {
		panic(fmt.Sprintf("zobrist: shadow checker cannot track more than %d elements; build without the zobristcheck tag or raise checkerCapacity", checkerCapacity))
	}
	m.keys[m.count] = p
	m.count++
	return true
}

// remove drops p from the set. It reports false if p is not present,
// in which case nothing is mutated.
func (m *memberSet) remove(p uint64) bool {
	for i := 0; i < m.count; i++ {
		if m.keys[i] == p {
			m.keys[i] = m.keys[m.count-1]
			m.count--
			return true
		}
	}
	return false
}
