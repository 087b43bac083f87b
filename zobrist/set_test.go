package zobrist

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

type pair struct {
	A int
	B int
}

func pairKey(p pair) uint64 {
	return StringKey(fmt.Sprintf("%d:%d", p.A, p.B))
}

func TestSetAddRemoveReturnsToZero(t *testing.T) {
	s := Empty(UintKey[int])
	s.Add(42)
	require.NotEqual(t, uint64(0), s.Uint64())
	s.Remove(42)
	require.Equal(t, uint64(0), s.Uint64())
}

func TestSetDistinctKeysChangeValue(t *testing.T) {
	s := Empty(pairKey)
	s.Add(pair{1, 42})
	before := s.Uint64()
	s.Add(pair{2, 42})
	require.NotEqual(t, before, s.Uint64())
}

func TestSetDistinctSetsDiffer(t *testing.T) {
	s1 := Empty(pairKey)
	s1.Add(pair{1, 42})
	s2 := Empty(pairKey)
	s2.Add(pair{2, 42})
	require.NotEqual(t, s1.Uint64(), s2.Uint64())
}

func TestSetSelfInverse(t *testing.T) {
	s := Empty(UintKey[int])
	s.Add(7)
	s.Add(13)
	before := s.Uint64()
	s.Add(99)
	s.Remove(99)
	require.Equal(t, before, s.Uint64())
}

func TestSetOrderIndependence(t *testing.T) {
	keys := []int{3, 1, 4, 1 << 10, 5, 9, 2, 6}
	rng := rand.New(rand.NewSource(42))
	want := uint64(0)
	for trial := 0; trial < 20; trial++ {
		shuffled := append([]int(nil), keys...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		s := Empty(UintKey[int])
		for _, k := range shuffled {
			s.Add(k)
		}
		if trial == 0 {
			want = s.Uint64()
			require.NotEqual(t, uint64(0), want)
		}
		require.Equal(t, want, s.Uint64())
		for _, k := range shuffled {
			s.Remove(k)
		}
		require.Equal(t, uint64(0), s.Uint64())
	}
}

func TestSetBalancedSequenceReturnsToZero(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	keys := make([]int, 0, 100)
	seen := map[int]bool{}
	for len(keys) < 100 {
		k := rng.Int()
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	s := Empty(UintKey[int])
	for _, k := range keys {
		s.Add(k)
	}
	// remove in reverse order, pairing preserved
	for i := len(keys) - 1; i >= 0; i-- {
		s.Remove(keys[i])
	}
	require.Equal(t, uint64(0), s.Uint64())
}

func TestSetRawRoundTrip(t *testing.T) {
	s := Empty(StringKey)
	s.Add("alpha")
	s.Add("beta")
	raw := s.Uint64()

	restored := FromUint64(StringKey, raw)
	require.Equal(t, raw, restored.Uint64())

	// both continue identically from here
	s.Add("gamma")
	restored.Add("gamma")
	require.Equal(t, s.Uint64(), restored.Uint64())
	s.Remove("beta")
	restored.Remove("beta")
	require.Equal(t, s.Uint64(), restored.Uint64())
}

func TestSetCopyIsIndependent(t *testing.T) {
	s := Empty(StringKey)
	s.Add("alpha")
	snapshot := s
	s.Add("beta")
	require.NotEqual(t, snapshot.Uint64(), s.Uint64())
	s.Remove("beta")
	require.Equal(t, snapshot.Uint64(), s.Uint64())
}
