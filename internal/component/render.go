// component/render.go
package component

// Circle is a particle mapped into surface pixels.
type Circle struct {
	X, Y   float64
	Radius float64
}
