package event

import "go-particle-drift/pkg/render"

// Kind discriminates ticks.
type Kind int

const (
	KindUpdate Kind = iota
	KindRender
)

func (k Kind) String() string {
	switch k {
	case KindUpdate:
		return "update"
	case KindRender:
		return "render"
	}
	return "unknown"
}

// Tick is one unit of work delivered to the driver: an UpdateTick or a RenderTick.
type Tick interface {
	Kind() Kind
}

// UpdateTick asks for the simulation to advance by DT seconds.
type UpdateTick struct {
	DT float64
}

func (UpdateTick) Kind() Kind { return KindUpdate }

// RenderTick asks for a frame to be drawn onto Surface, whose current
// viewport is Width x Height pixels.
type RenderTick struct {
	Surface       render.Surface
	Width, Height float64
}

func (RenderTick) Kind() Kind { return KindRender }

// NewRenderTick captures the surface together with its current size.
func NewRenderTick(s render.Surface) RenderTick {
	w, h := s.Size()
	return RenderTick{Surface: s, Width: w, Height: h}
}

// Source yields ticks one at a time. ok is false once the source is
// exhausted or closed; no further ticks follow.
type Source interface {
	Next() (tick Tick, ok bool)
}
