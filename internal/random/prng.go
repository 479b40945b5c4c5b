// internal/random/prng.go
package random

import (
	"math/rand"
	"time"
)

// PRNG wraps a math/rand generator so that a seeded or clock-seeded
// stream can be passed around as a Source. Not safe for concurrent use.
type PRNG struct {
	rng *rand.Rand
}

// NewPRNG creates a generator with the given seed.
// A zero seed uses the current time.
func NewPRNG(seed int64) *PRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNG{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a value in [min, max).
func (p *PRNG) Uniform(min, max float64) float64 {
	mustRange(min, max)
	return scale(p.rng.Float64(), min, max)
}

// Float64 returns a value in [0.0, 1.0).
func (p *PRNG) Float64() float64 {
	return p.rng.Float64()
}

// Split derives a new generator seeded from this one.
func (p *PRNG) Split() Source {
	seed := p.rng.Int63()
	if seed == 0 {
		seed = 1
	}
	return NewPRNG(seed)
}
