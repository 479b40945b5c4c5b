package entity

import (
	"errors"
	"math"
	"testing"

	"go-particle-drift/internal/component"
	"go-particle-drift/internal/config"
	"go-particle-drift/internal/random"
)

func newTestParticle(t *testing.T, pos component.Position, vel component.Velocity, rng random.Source, params Params) *Particle {
	t.Helper()
	p, err := NewParticle(pos, vel, 10, rng, params)
	if err != nil {
		t.Fatalf("NewParticle: %v", err)
	}
	return p
}

func TestNewParticleRejectsNonPositiveRadius(t *testing.T) {
	for _, r := range []float64{0, -1, math.NaN()} {
		_, err := NewParticle(component.Position{}, component.Velocity{}, r, random.NewScripted(0), DefaultParams())
		if !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("radius %v: err = %v, want ErrInvalidRadius", r, err)
		}
	}
}

func TestRadiusInvariantAcrossUpdates(t *testing.T) {
	p := newTestParticle(t, component.Position{X: 0.5, Y: 0.5}, component.Velocity{X: 50, Y: -50}, random.NewPRNG(1), DefaultParams())
	for i := 0; i < 1000; i++ {
		p.Update(0.1)
		if p.Radius() != 10 {
			t.Fatalf("radius changed to %v after %d updates", p.Radius(), i+1)
		}
	}
}

func TestZeroDtKeepsPosition(t *testing.T) {
	start := component.Position{X: 0.3, Y: 0.7}
	p := newTestParticle(t, start, component.Velocity{X: 1, Y: 1}, random.NewPRNG(5), DefaultParams())
	for i := 0; i < 100; i++ {
		p.Update(0)
	}
	if p.Position != start {
		t.Errorf("position = %+v, want %+v", p.Position, start)
	}
}

func TestNegativeDtIsClampedToZero(t *testing.T) {
	start := component.Position{X: 0.3, Y: 0.7}
	params := DefaultParams()
	params.Drift = 0
	p := newTestParticle(t, start, component.Velocity{X: 1, Y: 1}, random.NewScripted(0), params)
	p.Update(-1)
	if p.Position != start {
		t.Errorf("position = %+v, want %+v", p.Position, start)
	}
}

func TestDriftDrawsFromUnitRange(t *testing.T) {
	rng := random.NewScripted(0, 0.5, -0.25)
	params := DefaultParams()
	params.Drift = 0.01
	p := newTestParticle(t, component.Position{X: 0.5, Y: 0.5}, component.Velocity{}, rng, params)
	p.Update(1)

	if got, want := p.Velocity.X, 0.005; math.Abs(got-want) > 1e-12 {
		t.Errorf("vx = %v, want %v", got, want)
	}
	if got, want := p.Velocity.Y, -0.0025; math.Abs(got-want) > 1e-12 {
		t.Errorf("vy = %v, want %v", got, want)
	}
	if len(rng.Calls) != 2 {
		t.Fatalf("got %d draws, want 2", len(rng.Calls))
	}
	for _, c := range rng.Calls {
		if c != (random.Range{Min: -1, Max: 1}) {
			t.Errorf("drift drawn from %v, want [-1, 1)", c)
		}
	}
}

func TestZeroDriftSkipsRandomDraws(t *testing.T) {
	rng := random.NewScripted(0)
	params := DefaultParams()
	params.Drift = 0
	p := newTestParticle(t, component.Position{X: 0.5, Y: 0.5}, component.Velocity{X: 0.1}, rng, params)
	p.Update(1)
	if len(rng.Calls) != 0 {
		t.Errorf("got %d draws, want none", len(rng.Calls))
	}
}

func TestSoftLowerBoundNeverAmplifies(t *testing.T) {
	// Drift disabled: the damping factor alone never grows |v|.
	params := DefaultParams()
	params.Drift = 0
	src := random.NewPRNG(11)
	for i := 0; i < 1000; i++ {
		p := newTestParticle(t, component.Position{X: 0, Y: 0}, component.Velocity{X: -0.3, Y: -0.2}, src, params)
		p.Update(0.5)
		if math.Abs(p.Velocity.X) > 0.3 || math.Abs(p.Velocity.Y) > 0.2 {
			t.Fatalf("velocity amplified to %+v", p.Velocity)
		}
		if p.Velocity.X > 0 || p.Velocity.Y > 0 {
			t.Fatalf("lower-bound damping flipped sign: %+v", p.Velocity)
		}
	}
}

func TestSoftLowerBoundWithDriftGrowsAtMostK(t *testing.T) {
	params := DefaultParams()
	src := random.NewPRNG(13)
	for i := 0; i < 1000; i++ {
		p := newTestParticle(t, component.Position{X: 0, Y: 0}, component.Velocity{X: -0.3, Y: -0.2}, src, params)
		p.Update(0.5)
		// Drift lands before damping, so the bound loosens by K.
		if math.Abs(p.Velocity.X) > 0.3+params.Drift || math.Abs(p.Velocity.Y) > 0.2+params.Drift {
			t.Fatalf("velocity %+v grew by more than K=%v", p.Velocity, params.Drift)
		}
	}
}

type fixedDrift struct {
	dx, dy float64
	calls  int
}

func (d *fixedDrift) Drift() (float64, float64) {
	d.calls++
	return d.dx, d.dy
}

func TestDrifterReplacesOnlyDriftDraws(t *testing.T) {
	rng := random.NewScripted(0.5)
	params := DefaultParams()
	params.Drift = 0.1
	d := &fixedDrift{dx: 1, dy: -1}
	p := newTestParticle(t, component.Position{X: -1, Y: 50}, component.Velocity{}, rng, params)
	p.SetDrifter(d)
	p.Update(0)

	if d.calls != 1 {
		t.Fatalf("drifter called %d times, want 1", d.calls)
	}
	// vx = 0.1 then damped by the uniform draw of 0.5; vy untouched by damping.
	if math.Abs(p.Velocity.X-0.05) > 1e-12 || math.Abs(p.Velocity.Y+0.1) > 1e-12 {
		t.Errorf("velocity = %+v, want (0.05, -0.1)", p.Velocity)
	}
	want := []random.Range{{Min: 0, Max: 1}}
	if len(rng.Calls) != 1 || rng.Calls[0] != want[0] {
		t.Errorf("source draws = %v, want only the damping draw %v", rng.Calls, want)
	}
}

func TestSoftBoundaryScalesVelocity(t *testing.T) {
	tests := []struct {
		name  string
		pos   component.Position
		vel   component.Velocity
		draws []float64
		want  component.Velocity
		calls []random.Range
	}{
		{
			name:  "below lower bound on x",
			pos:   component.Position{X: -1, Y: 50},
			vel:   component.Velocity{X: -0.4, Y: 0.2},
			draws: []float64{0.5},
			want:  component.Velocity{X: -0.2, Y: 0.2},
			calls: []random.Range{{Min: 0, Max: 1}},
		},
		{
			name:  "above upper bound on y",
			pos:   component.Position{X: 50, Y: 101},
			vel:   component.Velocity{X: 0.2, Y: 0.4},
			draws: []float64{-0.5},
			want:  component.Velocity{X: 0.2, Y: -0.2},
			calls: []random.Range{{Min: -1, Max: 0}},
		},
		{
			name:  "outside on both axes",
			pos:   component.Position{X: -1, Y: 101},
			vel:   component.Velocity{X: -1, Y: 1},
			draws: []float64{0.25, -0.75},
			want:  component.Velocity{X: -0.25, Y: -0.75},
			calls: []random.Range{{Min: 0, Max: 1}, {Min: -1, Max: 0}},
		},
		{
			name: "inside the area",
			pos:  component.Position{X: 50, Y: 50},
			vel:  component.Velocity{X: 1, Y: 1},
			want: component.Velocity{X: 1, Y: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := random.NewScripted(0, tt.draws...)
			params := DefaultParams()
			params.Drift = 0
			p := newTestParticle(t, tt.pos, tt.vel, rng, params)
			p.Update(0)
			if p.Velocity != tt.want {
				t.Errorf("velocity = %+v, want %+v", p.Velocity, tt.want)
			}
			if p.Position != tt.pos {
				t.Errorf("soft boundary moved position to %+v", p.Position)
			}
			if len(rng.Calls) != len(tt.calls) {
				t.Fatalf("draws = %v, want %v", rng.Calls, tt.calls)
			}
			for i := range tt.calls {
				if rng.Calls[i] != tt.calls[i] {
					t.Errorf("draw %d from %v, want %v", i, rng.Calls[i], tt.calls[i])
				}
			}
		})
	}
}

func TestBounceBoundaryClampsAndReflects(t *testing.T) {
	params := DefaultParams()
	params.Drift = 0
	params.Boundary = config.BoundaryBounce
	params.BoundX, params.BoundY = 1, 1

	p := newTestParticle(t, component.Position{X: 0.1, Y: 0.9}, component.Velocity{X: -0.5, Y: 0.5}, random.NewScripted(0), params)
	p.Update(1)

	if p.Position != (component.Position{X: 0, Y: 1}) {
		t.Errorf("position = %+v, want clamped to (0, 1)", p.Position)
	}
	if p.Velocity != (component.Velocity{X: 0.5, Y: -0.5}) {
		t.Errorf("velocity = %+v, want reflected", p.Velocity)
	}
}

func TestDescribe(t *testing.T) {
	params := DefaultParams()
	p := newTestParticle(t, component.Position{X: 0.5, Y: 0.25}, component.Velocity{}, random.NewScripted(0), params)

	got := p.Describe(800, 600)
	want := component.Circle{X: 300, Y: 200, Radius: 10}
	if got != want {
		t.Errorf("swapped Describe = %+v, want %+v", got, want)
	}

	params.SwapAxes = false
	p = newTestParticle(t, component.Position{X: 0.5, Y: 0.25}, component.Velocity{}, random.NewScripted(0), params)
	got = p.Describe(800, 600)
	want = component.Circle{X: 400, Y: 150, Radius: 10}
	if got != want {
		t.Errorf("plain Describe = %+v, want %+v", got, want)
	}
}
