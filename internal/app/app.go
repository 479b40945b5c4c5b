// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"log"

	"go-particle-drift/internal/config"
	"go-particle-drift/internal/entity"
	"go-particle-drift/internal/event"
	"go-particle-drift/internal/random"
	"go-particle-drift/internal/system"
	"go-particle-drift/pkg/render"
)

// Simulation is everything assembled from a Config, short of a window.
type Simulation struct {
	Config  config.Config
	Palette render.Palette
	System  *system.ParticleSystem
	Driver  *Driver
	Events  *event.Dispatcher
	Latency *LatencyMonitor
}

// New builds a simulation from cfg with a PRNG seeded by cfg.Seed.
func New(cfg config.Config) (*Simulation, error) {
	return NewWithSource(cfg, random.NewPRNG(cfg.Seed))
}

// drifters returns the per-particle drift factory selected by cfg, or nil
// for uniform drift drawn from the particle's Source.
func drifters(cfg config.Config) func() random.Drifter {
	if cfg.Source != config.SourceNoise {
		return nil
	}
	field := random.NewNoiseField(cfg.Seed)
	return field.Next
}

// NewWithSource builds a simulation drawing creation and damping
// randomness from src. With the noise source selected, drift comes from
// per-particle noise walks instead.
func NewWithSource(cfg config.Config, src random.Source) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	palette := render.Palette{
		Background: config.BackgroundColor,
		Particle:   config.ParticleColor,
	}

	opts := system.DefaultParticleOptions()
	opts.Params = entity.ParamsFrom(cfg)
	opts.Color = palette.Particle
	opts.Stroke = cfg.Stroke
	opts.Workers = cfg.Workers
	opts.Drifters = drifters(cfg)

	sys, err := system.NewParticleSystem(cfg.Particles, src, opts)
	if err != nil {
		return nil, fmt.Errorf("create particles: %w", err)
	}

	events := event.NewDispatcher()
	latency := NewLatencyMonitor(cfg.LogInterval)
	events.Subscribe(event.TickTimed, latency)

	return &Simulation{
		Config:  cfg,
		Palette: palette,
		System:  sys,
		Driver:  NewDriver(sys, palette.Background, events),
		Events:  events,
		Latency: latency,
	}, nil
}

// RunHeadless drives cfg.Frames fixed-step frames against an in-memory
// surface and returns it holding the last frame.
func (s *Simulation) RunHeadless(ctx context.Context) (*render.Recorder, error) {
	rec := render.NewRecorder(float64(s.Config.Width), float64(s.Config.Height))
	rec.Keep = false

	src := event.NewFixedSource(s.Config.Frames, s.Config.StepSeconds(), rec)
	err := s.Driver.Run(ctx, src)
	log.Printf("headless: %d frames, %d particles, %d workers", src.Frame(), s.System.Len(), s.System.Workers())
	return rec, err
}
