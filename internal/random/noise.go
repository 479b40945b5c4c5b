package random

import (
	"github.com/aquilax/go-perlin"

	"go-particle-drift/internal/utils"
)

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	noiseStep    = 0.137
)

// Drifter supplies the per-axis velocity perturbation of one particle,
// each component in [-1, 1). It replaces only the drift draws; creation
// and boundary damping always use a uniform Source.
type Drifter interface {
	Drift() (dx, dy float64)
}

// Noise walks two independent 1D Perlin curves, one per axis, so drift
// turns into smooth meandering. Samples are correlated over time and not
// uniformly distributed, which is why Noise is a Drifter and not a Source.
// Not safe for concurrent use.
type Noise struct {
	px, py *perlin.Perlin
	t      float64
}

// NewNoise creates a noise walk for the given seed.
// A zero seed uses the current time.
func NewNoise(seed int64) *Noise {
	prng := NewPRNG(seed)
	return &Noise{
		px: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, prng.rng.Int63()),
		py: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, prng.rng.Int63()),
		t:  prng.Float64() * 1000,
	}
}

// Drift advances the walk and returns the next sample for each axis.
func (n *Noise) Drift() (float64, float64) {
	n.t += noiseStep
	return n.sample(n.px), n.sample(n.py)
}

func (n *Noise) sample(p *perlin.Perlin) float64 {
	u := utils.Clamp((p.Noise1D(n.t)+1)/2, 0, 1)
	return scale(u, -1, 1)
}

// NoiseField hands out one independent Noise walk per particle.
type NoiseField struct {
	seeds *PRNG
}

// NewNoiseField derives walk seeds from seed; zero uses the current time.
func NewNoiseField(seed int64) *NoiseField {
	return &NoiseField{seeds: NewPRNG(seed)}
}

// Next returns a fresh walk.
func (f *NoiseField) Next() Drifter {
	s := f.seeds.rng.Int63()
	if s == 0 {
		s = 1
	}
	return NewNoise(s)
}
