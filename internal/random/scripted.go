package random

import "go-particle-drift/internal/utils"

// Range records the bounds of one Uniform call.
type Range struct {
	Min, Max float64
}

// Scripted is a deterministic Source for tests. It hands out queued values
// in order and Fallback once the queue is empty. Values that fall outside
// the requested range are clamped into it.
type Scripted struct {
	Values   []float64
	Fallback float64
	Calls    []Range
}

// NewScripted returns a source that yields values, then fallback forever.
func NewScripted(fallback float64, values ...float64) *Scripted {
	return &Scripted{Values: values, Fallback: fallback}
}

func (s *Scripted) Uniform(min, max float64) float64 {
	mustRange(min, max)
	s.Calls = append(s.Calls, Range{min, max})
	v := s.Fallback
	if len(s.Values) > 0 {
		v = s.Values[0]
		s.Values = s.Values[1:]
	}
	if v >= max {
		return scale(1, min, max)
	}
	return utils.Clamp(v, min, max)
}
