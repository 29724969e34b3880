// Package chase implements the side-scrolling chase simulation.
// A player accelerates forward and falls under gravity while a chaser
// advances at constant speed. Capture halves the score and knocks the
// chaser back; it never ends the game.
//
// The package is pure: no I/O, no clocks, no logging. Every step
// function mutates an explicit *State and is driven by a measured dt.
package chase

import (
	"github.com/vovakirdan/decasepta/internal/config"
)

// Params holds the constants of a session. They never change while it runs.
type Params struct {
	Thrust      float64 // horizontal acceleration while thrust is held
	Gravity     float64 // downward acceleration while airborne
	MinY        float64 // ground clearance over flat terrain
	CatchRadius float64 // capture distance, exclusive
	ResetGap    float64 // chaser knockback on capture
	PlayerX     float64 // starting position
	PlayerY     float64
	ChaserX     float64
	Terrain     Terrain
}

// DefaultParams returns the parameters of the built-in configuration.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultChaseConfig())
}

// ParamsFromConfig extracts simulation parameters from a loaded config.
func ParamsFromConfig(cfg config.ChaseConfig) Params {
	return Params{
		Thrust:      cfg.Physics.Thrust,
		Gravity:     cfg.Physics.Gravity,
		MinY:        cfg.Physics.MinY,
		CatchRadius: cfg.Chaser.CatchRadius,
		ResetGap:    cfg.Chaser.ResetGap,
		PlayerX:     cfg.Player.StartX,
		PlayerY:     cfg.Player.StartY,
		ChaserX:     cfg.Chaser.StartX,
		Terrain: Terrain{
			Slope:      cfg.Terrain.Slope,
			StartX:     cfg.Terrain.StartX,
			BaseHeight: cfg.Terrain.BaseHeight,
		},
	}
}

// GroundAt returns the lowest allowed player height at x.
// Over flat terrain this is exactly MinY.
func (p Params) GroundAt(x float64) float64 {
	return p.MinY + p.Terrain.Rise(x)
}

// State is the whole mutable simulation record.
// Only the component whose step it is writes to it.
type State struct {
	PlayerX  float64
	PlayerY  float64
	PlayerVX float64
	PlayerVY float64
	PlayerAX float64

	ChaserX     float64
	ChaserSpeed float64 // fixed at creation from the difficulty

	Score        int
	ElapsedTicks int
	Elapsed      float64 // accumulated dt in seconds
	Catches      int
}

// NewState creates the initial state of a session.
func NewState(p Params, chaserSpeed float64) State {
	return State{
		PlayerX:     p.PlayerX,
		PlayerY:     p.PlayerY,
		ChaserX:     p.ChaserX,
		ChaserSpeed: chaserSpeed,
	}
}

// ElapsedSeconds returns the elapsed time in whole seconds for display.
func (s State) ElapsedSeconds() int {
	return int(s.Elapsed)
}

// Gap returns how far the chaser trails the player.
func (s State) Gap() float64 {
	return s.PlayerX - s.ChaserX
}
