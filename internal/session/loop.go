package session

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/decasepta/internal/chase"
	"github.com/vovakirdan/decasepta/internal/core"
)

// InputSource is sampled once per frame.
type InputSource interface {
	Sample() core.InputFrame
}

// InputFunc adapts a function to InputSource.
type InputFunc func() core.InputFrame

// Sample calls f.
func (f InputFunc) Sample() core.InputFrame {
	return f()
}

// Script replays frames in order and requests a quit once they run out.
func Script(frames ...core.InputFrame) InputSource {
	i := 0
	return InputFunc(func() core.InputFrame {
		if i >= len(frames) {
			return core.FrameOf(core.ActionQuit)
		}
		f := frames[i]
		i++
		return f
	})
}

// Renderer consumes one snapshot per running frame.
// Its errors are logged and otherwise ignored; the simulation never waits on it.
type Renderer interface {
	Render(snap chase.Snapshot) error
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(chase.Snapshot) error

// Render calls f.
func (f RenderFunc) Render(snap chase.Snapshot) error {
	return f(snap)
}

// Loop drives a Session with a Clock: wait -> sample -> tick -> render.
type Loop struct {
	Session *Session
	Clock   Clock
	Logger  *log.Logger
}

// Run executes frames until the session quits or ctx is cancelled.
// Cancellation is the external quit signal and ends the loop cleanly
// at the next frame boundary.
func (l *Loop) Run(ctx context.Context, in InputSource, out Renderer) (Summary, error) {
	logger := l.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	for !l.Session.Done() {
		dt, err := l.Clock.Wait(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				l.Session.Quit()
				break
			}
			return l.Session.Summary(), err
		}

		running := l.Session.Phase() == PhaseRunning
		res := l.Session.Tick(dt, in.Sample())
		if !running || l.Session.Done() {
			continue
		}

		if out != nil {
			if err := out.Render(res.Snapshot); err != nil {
				logger.Debug("render failed", "error", err, "tick", res.Snapshot.ElapsedTicks)
			}
		}
	}

	return l.Session.Summary(), nil
}
