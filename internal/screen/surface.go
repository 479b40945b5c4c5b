// internal/screen/surface.go
package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-particle-drift/pkg/render"
)

// Surface draws render.Arc primitives onto an ebiten image. Vertex and
// index buffers are reused between arcs.
type Surface struct {
	target  *ebiten.Image
	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func NewSurface() *Surface {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &Surface{
		fillImg: fillImg,
		vs:      make([]ebiten.Vertex, 0, 256),
		is:      make([]uint16, 0, 512),
	}
}

// Bind points the surface at the frame being drawn.
func (s *Surface) Bind(target *ebiten.Image) {
	s.target = target
}

func (s *Surface) Clear(c color.Color) {
	s.target.Fill(c)
}

func (s *Surface) Size() (float64, float64) {
	b := s.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) DrawArc(a render.Arc) {
	x, y, r := float32(a.X), float32(a.Y), float32(a.Radius)
	full := a.End-a.Start >= render.FullCircle

	path := vector.Path{}
	if a.Stroke == 0 && !full {
		// A filled partial arc is a sector.
		path.MoveTo(x, y)
	}
	path.Arc(x, y, r, float32(a.Start), float32(a.End), vector.Clockwise)
	if a.Stroke == 0 || full {
		path.Close()
	}

	if a.Stroke > 0 {
		s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
			Width: float32(a.Stroke),
		})
	} else {
		s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	}

	geoM := toGeoM(a.Transform)
	cr, cg, cb, ca := render.Floats(a.Color)
	for i := range s.vs {
		dx, dy := geoM.Apply(float64(s.vs[i].DstX), float64(s.vs[i].DstY))
		s.vs[i].DstX = float32(dx)
		s.vs[i].DstY = float32(dy)
		s.vs[i].ColorR = cr
		s.vs[i].ColorG = cg
		s.vs[i].ColorB = cb
		s.vs[i].ColorA = ca
	}
	s.target.DrawTriangles(s.vs, s.is, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// toGeoM converts an affine transform; the zero Transform maps to identity.
func toGeoM(t render.Transform) ebiten.GeoM {
	var g ebiten.GeoM
	if t.IsZero() {
		return g
	}
	g.SetElement(0, 0, t.A)
	g.SetElement(0, 1, t.B)
	g.SetElement(0, 2, t.TX)
	g.SetElement(1, 0, t.C)
	g.SetElement(1, 1, t.D)
	g.SetElement(1, 2, t.TY)
	return g
}
