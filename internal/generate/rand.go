package generate

import (
	"math/rand"
	"time"
)

// newRand returns a seeded source; seed 0 means time-based.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// weightedIndex picks an index with probability proportional to its weight.
// Weights must be non-negative with a positive sum.
func weightedIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}

	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// randIntInclusive returns a random int in [min, max], tolerating
// degenerate ranges by returning min.
func randIntInclusive(rng *rand.Rand, min, max int) int {
	if min >= max {
		return min
	}
	return min + rng.Intn(max-min+1)
}
