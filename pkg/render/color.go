package render

import "image/color"

// Palette holds the fixed colours of a frame.
type Palette struct {
	Background color.RGBA
	Particle   color.RGBA
}

// Floats converts c into the normalized channels used by vertex colours.
func Floats(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
