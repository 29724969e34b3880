package chase

import (
	"github.com/vovakirdan/decasepta/internal/config"
)

// StepResult is returned by Sim.Step after each frame.
type StepResult struct {
	Snapshot Snapshot
	Caught   bool // a capture happened this frame
	Skipped  bool // dt was not positive; nothing changed
}

// Sim owns the state of one chase session and steps its components in order.
type Sim struct {
	state      State
	params     Params
	character  Character
	difficulty config.Difficulty
	caught     bool
}

// NewSim creates a session with the chaser speed fixed by the difficulty.
func NewSim(p Params, c Character, d config.Difficulty) *Sim {
	return &Sim{
		state:      NewState(p, config.ChaserSpeedFor(d)),
		params:     p,
		character:  c,
		difficulty: d,
	}
}

// Step advances the session by dt seconds.
// Order: thrust -> physics -> pursuit -> scoring.
func (s *Sim) Step(dt float64, thrust bool) StepResult {
	if !(dt > 0) {
		return StepResult{Snapshot: s.Snapshot(), Skipped: true}
	}

	ApplyThrust(&s.state, s.params, thrust)
	Integrate(&s.state, s.params, dt)
	s.caught = Pursue(&s.state, s.params, dt)
	UpdateScore(&s.state, s.caught, dt)

	return StepResult{Snapshot: s.Snapshot(), Caught: s.caught}
}

// Snapshot returns the render view of the latest frame.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		PlayerX:        s.state.PlayerX,
		PlayerY:        s.state.PlayerY,
		ChaserX:        s.state.ChaserX,
		Ground:         s.params.GroundAt(s.state.PlayerX),
		Score:          s.state.Score,
		ElapsedTicks:   s.state.ElapsedTicks,
		ElapsedSeconds: s.state.ElapsedSeconds(),
		Catches:        s.state.Catches,
		Caught:         s.caught,
		Character:      s.character,
	}
}

// State returns a copy of the current state.
func (s *Sim) State() State {
	return s.state
}

// Params returns the session constants.
func (s *Sim) Params() Params {
	return s.params
}

// Character returns the player's identity.
func (s *Sim) Character() Character {
	return s.character
}

// Difficulty returns the mode the session was created with.
func (s *Sim) Difficulty() config.Difficulty {
	return s.difficulty
}
