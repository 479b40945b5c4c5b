// internal/app/latency.go
package app

import (
	"log"
	"time"

	"go-particle-drift/internal/event"
)

// LatencyStats summarizes tick handling cost over one window.
type LatencyStats struct {
	Last  time.Duration // most recent tick
	Mean  time.Duration
	Max   time.Duration
	Ticks int
	FPS   float64 // render ticks per second
}

// LatencyMonitor listens for TickTimed events. It is purely diagnostic:
// nothing it measures feeds back into the tick cadence.
type LatencyMonitor struct {
	window time.Duration
	logs   bool

	now  func() time.Time
	logf func(format string, args ...any)

	start   time.Time
	ticks   int
	frames  int
	total   time.Duration
	max     time.Duration
	last    time.Duration
	settled LatencyStats
}

// NewLatencyMonitor aggregates over windows of logEvery and logs each
// finished window. A zero logEvery disables logging and uses one-second
// windows for Snapshot.
func NewLatencyMonitor(logEvery time.Duration) *LatencyMonitor {
	m := &LatencyMonitor{
		window: logEvery,
		logs:   logEvery > 0,
		now:    time.Now,
		logf:   log.Printf,
	}
	if m.window <= 0 {
		m.window = time.Second
	}
	m.start = m.now()
	return m
}

// OnEvent implements event.Listener.
func (m *LatencyMonitor) OnEvent(e event.Event) {
	timing, ok := e.Data.(event.TickTiming)
	if e.Type != event.TickTimed || !ok {
		return
	}

	m.ticks++
	m.total += timing.Latency
	m.last = timing.Latency
	if timing.Latency > m.max {
		m.max = timing.Latency
	}
	if timing.Kind == event.KindRender {
		m.frames++
	}

	now := m.now()
	if elapsed := now.Sub(m.start); elapsed >= m.window {
		m.settled = LatencyStats{
			Last:  m.last,
			Mean:  m.total / time.Duration(m.ticks),
			Max:   m.max,
			Ticks: m.ticks,
			FPS:   float64(m.frames) / elapsed.Seconds(),
		}
		if m.logs {
			m.logf("took - last %d ms, mean %v, max %v over %d ticks (%.1f fps)",
				m.settled.Last.Milliseconds(), m.settled.Mean, m.settled.Max, m.settled.Ticks, m.settled.FPS)
		}
		m.start = now
		m.ticks, m.frames = 0, 0
		m.total, m.max = 0, 0
	}
}

// Snapshot returns the last finished window with Last kept current.
func (m *LatencyMonitor) Snapshot() LatencyStats {
	s := m.settled
	s.Last = m.last
	return s
}
