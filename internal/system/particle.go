// internal/system/particle.go
package system

import (
	"errors"
	"fmt"
	"image/color"

	"golang.org/x/sync/errgroup"

	"go-particle-drift/internal/component"
	"go-particle-drift/internal/config"
	"go-particle-drift/internal/entity"
	"go-particle-drift/internal/random"
)

var ErrNegativeCount = errors.New("system: negative particle count")

// ParticleOptions configures a ParticleSystem.
type ParticleOptions struct {
	Params  entity.Params
	Color   color.RGBA
	Stroke  float64 // arc stroke width, 0 fills
	Workers int     // >1 updates contiguous shards concurrently
	// Drifters, when set, gives each particle its own drift walk.
	Drifters func() random.Drifter
}

// DefaultParticleOptions returns the stock look and motion.
func DefaultParticleOptions() ParticleOptions {
	return ParticleOptions{
		Params:  entity.DefaultParams(),
		Color:   config.ParticleColor,
		Stroke:  config.ParticleStroke,
		Workers: 1,
	}
}

type shard struct {
	lo, hi int
}

// ParticleSystem owns a fixed, ordered population of particles.
type ParticleSystem struct {
	particles []*entity.Particle
	shards    []shard
	color     color.RGBA
	stroke    float64
}

// NewParticleSystem creates n particles with positions in [0,1)², radii in
// [MinRadius, MaxRadius) and the fixed initial speed on both axes.
//
// With opts.Workers > 1 and a source implementing random.Splitter, the
// population is cut into contiguous shards, each drifting with its own
// generator so shards can be updated in parallel.
func NewParticleSystem(n int, src random.Source, opts ParticleOptions) (*ParticleSystem, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}

	s := &ParticleSystem{
		particles: make([]*entity.Particle, 0, n),
		color:     opts.Color,
		stroke:    opts.Stroke,
	}

	sources := []random.Source{src}
	if splitter, ok := src.(random.Splitter); ok && opts.Workers > 1 && n > 1 {
		count := min(opts.Workers, n)
		sources = make([]random.Source, count)
		for i := range sources {
			sources[i] = splitter.Split()
		}
	}
	for i := range sources {
		s.shards = append(s.shards, shard{lo: i * n / len(sources), hi: (i + 1) * n / len(sources)})
	}

	for i, sh := range s.shards {
		for range sh.hi - sh.lo {
			pos := component.Position{X: src.Uniform(0, 1), Y: src.Uniform(0, 1)}
			radius := src.Uniform(config.MinRadius, config.MaxRadius)
			vel := component.Velocity{X: config.InitialSpeed, Y: config.InitialSpeed}
			p, err := entity.NewParticle(pos, vel, radius, sources[i], opts.Params)
			if err != nil {
				return nil, fmt.Errorf("create particle %d: %w", len(s.particles), err)
			}
			if opts.Drifters != nil {
				p.SetDrifter(opts.Drifters())
			}
			s.particles = append(s.particles, p)
		}
	}
	return s, nil
}

// Len returns the population size.
func (s *ParticleSystem) Len() int {
	return len(s.particles)
}

// Particle returns the i-th particle in render order.
func (s *ParticleSystem) Particle(i int) *entity.Particle {
	return s.particles[i]
}

// Workers reports how many shards Update runs concurrently.
func (s *ParticleSystem) Workers() int {
	return len(s.shards)
}

// Update advances every particle by dt seconds.
func (s *ParticleSystem) Update(dt float64) {
	if len(s.shards) <= 1 {
		for _, p := range s.particles {
			p.Update(dt)
		}
		return
	}

	var g errgroup.Group
	for i, sh := range s.shards {
		g.Go(func() error {
			return s.updateShard(i, sh, dt)
		})
	}
	// A particle update only fails by panicking on a contract violation.
	// Re-raise it here so it surfaces on the caller's goroutine.
	if err := g.Wait(); err != nil {
		panic(err)
	}
}

func (s *ParticleSystem) updateShard(i int, sh shard, dt float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("update shard %d: %w", i, e)
			} else {
				err = fmt.Errorf("update shard %d: %v", i, r)
			}
		}
	}()
	for _, p := range s.particles[sh.lo:sh.hi] {
		p.Update(dt)
	}
	return nil
}
