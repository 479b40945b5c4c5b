// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"
)

const (
	WindowTitle  = "spinning-square"
	ScreenWidth  = 1920
	ScreenHeight = 1080

	ParticleCount   = 300
	DriftScale      = 0.01  // K: magnitude of the per-tick velocity perturbation
	InitialSpeed    = 0.001 // both axes
	MinRadius       = 1.0
	MaxRadius       = 30.0
	BoundX          = 100.0 // upper bound of the simulation area, normalized units
	BoundY          = 100.0
	TicksPerSecond  = 120
	ParticleStroke  = 0.0 // 0 draws filled discs
	LatencyLogEvery = 5 * time.Second
	HeadlessFrames  = 600
)

var (
	BackgroundColor = color.RGBA{255, 128, 128, 255}
	ParticleColor   = color.RGBA{255, 0, 0, 255}
	HUDTextColor    = color.RGBA{20, 20, 30, 255}
)

// Boundary selects how a particle reacts to leaving the simulation area.
type Boundary int

const (
	// BoundarySoft only biases velocity with a random factor; position is never clamped.
	BoundarySoft Boundary = iota
	// BoundaryBounce clamps position to the area and reflects velocity.
	BoundaryBounce
)

func (b Boundary) String() string {
	switch b {
	case BoundarySoft:
		return "soft"
	case BoundaryBounce:
		return "bounce"
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// ParseBoundary maps a flag value onto a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "soft":
		return BoundarySoft, nil
	case "bounce":
		return BoundaryBounce, nil
	}
	return 0, fmt.Errorf("%w: unknown boundary %q", ErrInvalid, s)
}

// Source names what drives particle drift. Creation and damping always
// draw from the PRNG.
type Source string

const (
	SourcePRNG  Source = "prng"
	SourceNoise Source = "noise"
)

var ErrInvalid = errors.New("invalid config")

// Config is the runtime configuration assembled by cmd/drift.
type Config struct {
	Title         string
	Width, Height int

	Particles int
	Drift     float64
	BoundX    float64
	BoundY    float64
	Boundary  Boundary
	SwapAxes  bool
	Stroke    float64

	TPS     int
	Workers int
	Source  Source
	Seed    int64

	HUD         bool
	LogInterval time.Duration

	Headless bool
	Frames   int
}

// Default returns the stock animation settings.
func Default() Config {
	return Config{
		Title:       WindowTitle,
		Width:       ScreenWidth,
		Height:      ScreenHeight,
		Particles:   ParticleCount,
		Drift:       DriftScale,
		BoundX:      BoundX,
		BoundY:      BoundY,
		Boundary:    BoundarySoft,
		SwapAxes:    true,
		Stroke:      ParticleStroke,
		TPS:         TicksPerSecond,
		Workers:     1,
		Source:      SourcePRNG,
		LogInterval: LatencyLogEvery,
		Frames:      HeadlessFrames,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Particles < 0:
		return fmt.Errorf("%w: particles %d", ErrInvalid, c.Particles)
	case c.Drift < 0 || math.IsNaN(c.Drift) || math.IsInf(c.Drift, 0):
		return fmt.Errorf("%w: drift %v", ErrInvalid, c.Drift)
	case !(c.BoundX > 0) || !(c.BoundY > 0):
		return fmt.Errorf("%w: bounds %vx%v", ErrInvalid, c.BoundX, c.BoundY)
	case c.Boundary != BoundarySoft && c.Boundary != BoundaryBounce:
		return fmt.Errorf("%w: boundary %v", ErrInvalid, c.Boundary)
	case c.Stroke < 0:
		return fmt.Errorf("%w: stroke %v", ErrInvalid, c.Stroke)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	case c.Source != SourcePRNG && c.Source != SourceNoise:
		return fmt.Errorf("%w: source %q", ErrInvalid, c.Source)
	case c.LogInterval < 0:
		return fmt.Errorf("%w: log interval %v", ErrInvalid, c.LogInterval)
	case c.Headless && c.Frames <= 0:
		return fmt.Errorf("%w: frames %d", ErrInvalid, c.Frames)
	}
	return nil
}

// StepSeconds is the fixed update step implied by TPS.
func (c Config) StepSeconds() float64 {
	return 1 / float64(c.TPS)
}
