package event

import "time"

const (
	TickTimed EventType = "TickTimed" // Data: TickTiming
)

// TickTiming is the wall-clock cost of handling one tick.
type TickTiming struct {
	Kind    Kind
	Latency time.Duration
}
