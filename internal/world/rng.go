package world

import (
	"math/rand"
	"time"
)

// RandomSource is a seedable generator of uniform integers.
// It is not safe for concurrent use; build one per generation.
type RandomSource struct {
	rng  *rand.Rand
	seed int64
}

// NewRandomSource creates a source seeded with seed.
// A seed of 0 means a seed is derived from the wall clock.
func NewRandomSource(seed int64) *RandomSource {
	r := &RandomSource{}
	r.Reseed(seed)
	return r
}

// Reseed reinitializes the generator and returns the effective seed.
func (r *RandomSource) Reseed(seed int64) int64 {
	if seed == 0 {
		seed = clockSeed()
	}
	r.seed = seed
	r.rng = rand.New(rand.NewSource(seed))
	return seed
}

// Seed returns the effective seed of the current sequence.
func (r *RandomSource) Seed() int64 {
	return r.seed
}

// Range returns a uniform integer in [low, high).
// If high <= low, low is returned.
func (r *RandomSource) Range(low, high int) int {
	if high <= low {
		return low
	}
	return low + r.rng.Intn(high-low)
}

func clockSeed() int64 {
	seed := time.Now().UnixNano()
	if seed == 0 {
		seed = 1
	}
	return seed
}
