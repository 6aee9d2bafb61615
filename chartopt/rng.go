package chartopt

import (
	"hash/fnv"
	"math/rand"
)

// SamplingKey seeds the clusterer's random source. Two reductions with the
// same SamplingKey over identical input MUST pick identical initial
// centroids, which is what makes scatter reduction reproducible in tests
// and across dashboard refreshes.
type SamplingKey int64

// NewSamplingKey derives a SamplingKey from a seed and a series label, so
// distinct series in one chart draw from isolated streams.
func NewSamplingKey(seed int64, series string) SamplingKey {
	if series == "" {
		return SamplingKey(seed)
	}
	return SamplingKey(seed ^ fnv1a64(series))
}

// NewRand creates a rand.Rand for the key. Never returns nil.
func (k SamplingKey) NewRand() *rand.Rand {
	return rand.New(rand.NewSource(int64(k)))
}

// drawDistinctIndices picks k distinct indices in [0, n) in draw order.
// The de-duplicating retry loop matters: duplicate seeds would silently
// collapse two clusters into one.
func drawDistinctIndices(rng *rand.Rand, n, k int) []int {
	if k > n {
		k = n
	}
	seen := make(map[int]bool, k)
	out := make([]int, 0, k)
	for len(out) < k {
		idx := rng.Intn(n)
		if seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	return out
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
