// internal/system/render.go
package system

import "go-particle-drift/pkg/render"

// Render draws every particle as a full-circle arc in sequence order onto
// a surface whose viewport is width x height pixels. It reads particle
// state only; clearing the surface is up to the caller.
func (s *ParticleSystem) Render(surface render.Surface, width, height float64) {
	for _, p := range s.particles {
		c := p.Describe(width, height)
		surface.DrawArc(render.Arc{
			X:         c.X,
			Y:         c.Y,
			Radius:    c.Radius,
			Start:     0,
			End:       render.FullCircle,
			Color:     s.color,
			Stroke:    s.stroke,
			Transform: render.Identity(),
		})
	}
}
