// Package core carries small helpers shared by level generators and tools.
package core

import "math/rand/v2"

// RNG wraps math/rand/v2 with deterministic seeding so generated levels are
// reproducible from a single int64.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p. p <= 0 never fires, p >= 1 always
// does.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Pick returns a random element of ids, or 0 for an empty slice.
func (r *RNG) Pick(ids []uint32) uint32 {
	if len(ids) == 0 {
		return 0
	}
	return ids[r.r.IntN(len(ids))]
}
