package config

import (
	"flag"
	"fmt"
)

// Set implements flag.Value.
func (b *Boundary) Set(s string) error {
	v, err := ParseBoundary(s)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (s Source) String() string { return string(s) }

// Set implements flag.Value.
func (s *Source) Set(v string) error {
	switch Source(v) {
	case SourcePRNG, SourceNoise:
		*s = Source(v)
		return nil
	}
	return fmt.Errorf("%w: unknown source %q", ErrInvalid, v)
}

// Bind registers every field of c on fs, using the current values of c as defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")

	fs.IntVar(&c.Particles, "particles", c.Particles, "number of particles")
	fs.Float64Var(&c.Drift, "drift", c.Drift, "velocity drift scale per update")
	fs.Float64Var(&c.BoundX, "bound-x", c.BoundX, "upper bound of the simulation area on x")
	fs.Float64Var(&c.BoundY, "bound-y", c.BoundY, "upper bound of the simulation area on y")
	fs.Var(&c.Boundary, "boundary", "boundary policy: soft or bounce")
	fs.BoolVar(&c.SwapAxes, "swap-axes", c.SwapAxes, "map x by surface height and y by surface width")
	fs.Float64Var(&c.Stroke, "stroke", c.Stroke, "arc stroke width, 0 draws filled circles")

	fs.IntVar(&c.TPS, "tps", c.TPS, "update ticks per second")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used for the particle update")
	fs.Var(&c.Source, "source", "drift source: prng for uniform draws, noise for per-particle perlin walks")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 seeds from the clock")

	fs.BoolVar(&c.HUD, "hud", c.HUD, "draw the latency overlay")
	fs.DurationVar(&c.LogInterval, "log-interval", c.LogInterval, "how often tick latency is logged, 0 disables")

	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without a window against an in-memory surface")
	fs.IntVar(&c.Frames, "frames", c.Frames, "frames to run in headless mode")
}

// Parse builds a Config from command line arguments.
func Parse(name string, args []string) (Config, error) {
	c := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
