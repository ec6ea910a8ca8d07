package maze

import "math/rand"

// A maze is a pure function of its seed: Build draws every branch, loop and
// bridge decision from one *rand.Rand, in a fixed order. The source is not
// safe for concurrent use, so each Generate call needs its own.

// defaultRNGSeed is the seed of DefaultConfig and the stand-in for seed 0.
const defaultRNGSeed int64 = 1

// NewRand returns the random source Build uses for cfg.Seed. Seed 0 is
// replaced by defaultRNGSeed so that a zero-valued Config still produces a stable maze.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// chance reports true with probability p.
// p ≥ 1 always succeeds and p ≤ 0 never does, since Float64 lies in [0, 1).
func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
