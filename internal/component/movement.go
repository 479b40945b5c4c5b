// component/movement.go
package component

// Position is a normalized particle position.
type Position struct {
	X, Y float64
}

// Velocity is measured in normalized units per second.
type Velocity struct {
	X, Y float64
}
