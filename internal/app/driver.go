// internal/app/driver.go
package app

import (
	"context"
	"image/color"
	"log"
	"time"

	"go-particle-drift/internal/event"
	"go-particle-drift/internal/system"
)

// Driver routes ticks to the particle system. It does no pacing of its
// own: ticks are handled one at a time, in the order they arrive.
type Driver struct {
	System     *system.ParticleSystem
	Background color.RGBA
	Events     *event.Dispatcher // optional; receives TickTimed after every tick

	now        func() time.Time
	warnedKind bool
}

func NewDriver(sys *system.ParticleSystem, background color.RGBA, events *event.Dispatcher) *Driver {
	if sys == nil {
		panic("app: nil particle system")
	}
	return &Driver{
		System:     sys,
		Background: background,
		Events:     events,
		now:        time.Now,
	}
}

// Handle processes a single tick to completion.
func (d *Driver) Handle(tick event.Tick) {
	start := d.now()

	switch t := tick.(type) {
	case event.RenderTick:
		t.Surface.Clear(d.Background)
		d.System.Render(t.Surface, t.Width, t.Height)
	case event.UpdateTick:
		d.System.Update(t.DT)
	default:
		if !d.warnedKind {
			log.Printf("driver: ignoring tick of type %T", tick)
			d.warnedKind = true
		}
		return
	}

	if d.Events != nil {
		d.Events.Dispatch(event.Event{
			Type: event.TickTimed,
			Data: event.TickTiming{Kind: tick.Kind(), Latency: d.now().Sub(start)},
		})
	}
}

// Run pulls ticks from src until it is exhausted or ctx is cancelled.
// It returns nil when the source ends and ctx.Err() on cancellation.
func (d *Driver) Run(ctx context.Context, src event.Source) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		tick, ok := src.Next()
		if !ok {
			return nil
		}
		d.Handle(tick)
	}
}
