package event

import "go-particle-drift/pkg/render"

// FixedSource produces a fixed number of frames, each an update tick of DT
// followed by a render tick onto Surface. It drives the headless mode.
type FixedSource struct {
	Frames  int
	DT      float64
	Surface render.Surface

	frame   int
	pending bool // render tick of the current frame still owed
}

func NewFixedSource(frames int, dt float64, surface render.Surface) *FixedSource {
	return &FixedSource{Frames: frames, DT: dt, Surface: surface}
}

func (s *FixedSource) Next() (Tick, bool) {
	if s.pending {
		s.pending = false
		s.frame++
		return NewRenderTick(s.Surface), true
	}
	if s.frame >= s.Frames {
		return nil, false
	}
	s.pending = true
	return UpdateTick{DT: s.DT}, true
}

// Frame reports how many complete frames have been emitted.
func (s *FixedSource) Frame() int {
	return s.frame
}
