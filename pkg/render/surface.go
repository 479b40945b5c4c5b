// Package render describes the drawing surface the simulation draws onto.
// It has no backend of its own; see internal/screen for the ebiten one.
package render

import (
	"image/color"
	"math"
)

// FullCircle is the end angle of an arc that closes on itself.
const FullCircle = 2 * math.Pi

// Arc is a circular arc centred at (X, Y). Angles are in radians.
// A zero Stroke fills the sector instead of outlining it.
type Arc struct {
	X, Y       float64
	Radius     float64
	Start, End float64
	Color      color.RGBA
	Stroke     float64
	Transform  Transform
}

// Surface is what a render tick draws onto.
type Surface interface {
	Clear(c color.Color)
	DrawArc(a Arc)
	// Size reports the current viewport in pixels.
	Size() (width, height float64)
}
