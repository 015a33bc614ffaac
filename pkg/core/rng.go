package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Uniform returns a value in [lo, hi). A degenerate or inverted range yields lo.
func (r *RNG) Uniform(lo, hi float64) float64 {
	if !(hi > lo) {
		return lo
	}
	v := lo + (hi-lo)*r.r.Float64()
	// Rounding can land exactly on hi for tiny ranges.
	if v >= hi {
		return lo
	}
	return v
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
