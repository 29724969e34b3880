package tui

import "time"

// ThrustLatch turns key presses into a held signal.
// Terminals report presses, not key state; holding a key produces a stream
// of repeats, each of which extends the latch.
type ThrustLatch struct {
	hold  time.Duration
	until time.Time
}

// NewThrustLatch creates a latch that stays engaged for hold after each press.
func NewThrustLatch(hold time.Duration) ThrustLatch {
	return ThrustLatch{hold: hold}
}

// Press engages the latch at now.
func (l *ThrustLatch) Press(now time.Time) {
	l.until = now.Add(l.hold)
}

// Active reports whether thrust is held at now.
func (l ThrustLatch) Active(now time.Time) bool {
	return now.Before(l.until)
}
