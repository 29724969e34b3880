package session

import (
	"context"
	"time"
)

// Clock paces the frame loop. Wait blocks until the next frame is due and
// returns the measured time since the previous one, in seconds.
type Clock interface {
	Wait(ctx context.Context) (float64, error)
}

// DeltaTimer measures the time between consecutive frames.
type DeltaTimer struct {
	last time.Time
}

// Mark records a frame at t and returns the seconds since the previous mark.
// The first mark returns 0, which the simulation treats as a no-op frame.
func (d *DeltaTimer) Mark(t time.Time) float64 {
	if d.last.IsZero() {
		d.last = t
		return 0
	}
	dt := t.Sub(d.last).Seconds()
	d.last = t
	return dt
}

// FrameClock paces frames to a target rate and reports the real elapsed time.
// Frame delivery is never exact, so callers must integrate with the returned dt.
type FrameClock struct {
	interval time.Duration
	next     time.Time
	delta    DeltaTimer
}

// NewFrameClock creates a clock targeting fps frames per second.
func NewFrameClock(fps int) *FrameClock {
	if fps <= 0 {
		fps = 60
	}
	return &FrameClock{interval: time.Second / time.Duration(fps)}
}

// Wait sleeps until the next frame boundary or until ctx is done.
func (c *FrameClock) Wait(ctx context.Context) (float64, error) {
	now := time.Now()
	if c.next.IsZero() {
		c.next = now
		c.delta.Mark(now)
	}
	c.next = c.next.Add(c.interval)

	// Fell behind: resynchronize instead of bursting to catch up
	if c.next.Before(now) {
		c.next = now
	}

	if d := time.Until(c.next); d > 0 {
		timer := time.NewTimer(d)
		select {
		case <-ctx.Done():
			timer.Stop()
			return 0, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return 0, err
	}

	return c.delta.Mark(time.Now()), nil
}

// FixedClock returns the same dt every frame without sleeping.
// Used for headless runs where reproducibility matters more than pacing.
type FixedClock struct {
	DT float64
}

// Wait returns the fixed dt unless ctx is done.
func (c FixedClock) Wait(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return c.DT, nil
}
