package synth

import "math/rand"

// sampleStrings picks k distinct elements from pool in random order. Asking
// for more than the pool holds returns the whole pool shuffled.
func sampleStrings(rng *rand.Rand, pool []string, k int) []string {
	if k > len(pool) {
		k = len(pool)
	}
	out := make([]string, 0, k)
	for _, i := range rng.Perm(len(pool))[:k] {
		out = append(out, pool[i])
	}
	return out
}

// intBetween draws uniformly from [lo, hi] inclusive.
func intBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func choice(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}
