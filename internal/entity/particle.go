// internal/entity/particle.go
package entity

import (
	"errors"
	"fmt"
	"math"

	"go-particle-drift/internal/component"
	"go-particle-drift/internal/config"
	"go-particle-drift/internal/random"
)

var ErrInvalidRadius = errors.New("entity: radius must be positive")

// Params holds the motion and mapping constants shared by every particle.
type Params struct {
	Drift    float64 // scale of the per-update velocity perturbation
	BoundX   float64 // upper bound of the simulation area; the lower bound is 0
	BoundY   float64
	Boundary config.Boundary
	SwapAxes bool // map x by surface height and y by surface width
}

// DefaultParams mirrors the defaults in internal/config.
func DefaultParams() Params {
	return Params{
		Drift:    config.DriftScale,
		BoundX:   config.BoundX,
		BoundY:   config.BoundY,
		Boundary: config.BoundarySoft,
		SwapAxes: true,
	}
}

// ParamsFrom extracts particle parameters from the runtime config.
func ParamsFrom(c config.Config) Params {
	return Params{
		Drift:    c.Drift,
		BoundX:   c.BoundX,
		BoundY:   c.BoundY,
		Boundary: c.Boundary,
		SwapAxes: c.SwapAxes,
	}
}

// Particle is a circle wandering under random velocity drift.
type Particle struct {
	Position component.Position
	Velocity component.Velocity

	radius  float64
	rng     random.Source
	drifter random.Drifter // optional; nil draws drift from rng
	params  Params
}

// NewParticle creates a particle. The radius is fixed for its lifetime.
func NewParticle(pos component.Position, vel component.Velocity, radius float64, rng random.Source, params Params) (*Particle, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	if rng == nil {
		panic("entity: nil random source")
	}
	return &Particle{
		Position: pos,
		Velocity: vel,
		radius:   radius,
		rng:      rng,
		params:   params,
	}, nil
}

// SetDrifter replaces the uniform drift draws with d. Creation and
// boundary damping keep using the particle's Source.
func (p *Particle) SetDrifter(d random.Drifter) {
	p.drifter = d
}

func (p *Particle) Radius() float64 {
	return p.radius
}

// Update advances the particle by dt seconds. Negative dt is treated as 0.
func (p *Particle) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}

	// Explicit Euler step with the velocity from the previous tick.
	p.Position.X += p.Velocity.X * dt
	p.Position.Y += p.Velocity.Y * dt

	if k := p.params.Drift; k != 0 {
		var dx, dy float64
		if p.drifter != nil {
			dx, dy = p.drifter.Drift()
		} else {
			dx = p.rng.Uniform(-1, 1)
			dy = p.rng.Uniform(-1, 1)
		}
		p.Velocity.X += dx * k
		p.Velocity.Y += dy * k
	}

	switch p.params.Boundary {
	case config.BoundaryBounce:
		p.Position.X, p.Velocity.X = bounce(p.Position.X, p.Velocity.X, p.params.BoundX)
		p.Position.Y, p.Velocity.Y = bounce(p.Position.Y, p.Velocity.Y, p.params.BoundY)
	default:
		p.dampSoft()
	}
}

// dampSoft rescales velocity on any axis that is outside the area.
// Position is left alone, so a fast particle may overshoot for a few ticks.
func (p *Particle) dampSoft() {
	if p.Position.X < 0 {
		p.Velocity.X *= p.rng.Uniform(0, 1)
	}
	if p.Position.Y < 0 {
		p.Velocity.Y *= p.rng.Uniform(0, 1)
	}
	if p.Position.X > p.params.BoundX {
		p.Velocity.X *= p.rng.Uniform(-1, 0)
	}
	if p.Position.Y > p.params.BoundY {
		p.Velocity.Y *= p.rng.Uniform(-1, 0)
	}
}

func bounce(pos, vel, bound float64) (float64, float64) {
	switch {
	case pos < 0:
		return 0, math.Abs(vel)
	case pos > bound:
		return bound, -math.Abs(vel)
	}
	return pos, vel
}

// Describe maps the particle onto a surface of the given size.
func (p *Particle) Describe(width, height float64) component.Circle {
	if p.params.SwapAxes {
		return component.Circle{X: p.Position.X * height, Y: p.Position.Y * width, Radius: p.radius}
	}
	return component.Circle{X: p.Position.X * width, Y: p.Position.Y * height, Radius: p.radius}
}
