// Package dice provides a seedable random source with range and dice helpers.
package dice

import (
	"math/rand"
	"time"
)

// Roller wraps a seeded rand.Rand. A Roller is not safe for concurrent use.
type Roller struct {
	rng  *rand.Rand
	seed int64
}

// New creates a roller. A seed of 0 means a seed is taken from the clock.
func New(seed int64) *Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Roller{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the roller was created with.
func (r *Roller) Seed() int64 {
	return r.seed
}

// Range returns a uniform integer in [min, max], both ends inclusive.
// If max < min the bounds are swapped.
func (r *Roller) Range(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.Intn(max-min+1)
}

// RollDice rolls n dice with the given number of sides and returns the sum.
// Returns 0 if either n or sides is not positive.
func (r *Roller) RollDice(n, sides int) int {
	if n <= 0 || sides <= 0 {
		return 0
	}
	total := 0
	for i := 0; i < n; i++ {
		total += 1 + r.rng.Intn(sides)
	}
	return total
}

// Intn returns a uniform integer in [0, n). It panics if n <= 0.
func (r *Roller) Intn(n int) int {
	return r.rng.Intn(n)
}

// CoinFlip returns true half of the time.
func (r *Roller) CoinFlip() bool {
	return r.Range(0, 1) == 1
}
