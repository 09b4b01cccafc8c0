// Package sampling holds the weighted-choice and range-draw primitives the
// trajectory generator is built on. Every draw goes through an injected
// *rand.Rand so callers can seed deterministically and keep concurrent use
// safe with per-goroutine sources.
package sampling

import (
	"math"
	"math/rand"
)

// WeightedChoice draws one item with probability proportional to its weight.
//
// The implementation is a cumulative linear scan: draw r uniformly over
// [0, sum(weights)), walk the items in array order subtracting each weight,
// and return the first item where the running value drops to <= 0. The final
// item is the fallback when floating-point rounding leaves r positive after
// the scan. The scan order and tie-break are part of the realized
// distribution; do not replace this with an alias table or binary search.
//
// Empty or all-zero weight slices are caller programming errors; items and
// weights must be the same length.
func WeightedChoice[T any](rng *rand.Rand, items []T, weights []float64) T {
	var total float64
	for _, w := range weights {
		total += w
	}

	r := rng.Float64() * total
	for i, item := range items {
		r -= weights[i]
		if r <= 0 {
			return item
		}
	}
	return items[len(items)-1]
}

// IntRange draws a uniform integer from the inclusive range [min, max].
func IntRange(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// Gaussian draws from a normal distribution with the given mean and standard
// deviation using the Box-Muller transform over two independent uniforms.
func Gaussian(rng *rand.Rand, mean, stdDev float64) float64 {
	// 1-Float64() keeps u1 in (0,1] so the log is finite.
	u1 := 1 - rng.Float64()
	u2 := rng.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + z*stdDev
}
