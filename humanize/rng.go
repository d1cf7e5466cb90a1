package humanize

import "math/rand"

// The source engine's sampler: a linear congruential generator with modulus
// 2^31-1.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 2147483647
)

// RNG is a plain value owned by one root-selection call; it is never
// process-wide static state, unlike the source's function-local static
// counter.
type RNG struct {
	seed uint64
}

// NewRNG seeds an RNG from seed. A seed of 0 means "nondeterministic": a
// fresh seed is drawn from the runtime's global random source so repeated
// calls with seed 0 do not pick the same move every game.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = uint64(rand.Int63n(lcgModulus-1)) + 1
	}
	return &RNG{seed: seed}
}

// Float64From combines input with the RNG's base seed and returns a value
// in [0, 1), matching the source's seeded_random(seed + x) call pattern
// (used once per candidate for noise, and once for the final draw).
func (r *RNG) Float64From(input uint64) float64 {
	state := r.seed + input
	if state == 0 {
		state = 1
	}
	state = (lcgMultiplier*state + lcgIncrement) % lcgModulus
	return float64(state) / float64(lcgModulus)
}
