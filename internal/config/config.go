// Package config provides YAML-based chase configuration loading and the
// difficulty policy for the game.
package config

import (
	"errors"
	"fmt"
)

// ChaseConfig contains all tunable parameters of a chase session.
type ChaseConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Chaser  ChaserConfig  `yaml:"chaser"`
	Terrain TerrainConfig `yaml:"terrain"`
	View    ViewConfig    `yaml:"view"`
}

// PhysicsConfig defines the player kinematics constants.
type PhysicsConfig struct {
	Thrust  float64 `yaml:"thrust"`
	Gravity float64 `yaml:"gravity"`
	MinY    float64 `yaml:"min_y"`
}

// PlayerConfig defines the player's starting position.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// ChaserConfig defines the pursuer. Its speed comes from the difficulty, not from here.
type ChaserConfig struct {
	StartX      float64 `yaml:"start_x"`
	CatchRadius float64 `yaml:"catch_radius"`
	ResetGap    float64 `yaml:"reset_gap"`
	Glyph       string  `yaml:"glyph"`
}

// TerrainConfig defines the linear ground profile.
type TerrainConfig struct {
	Slope      float64 `yaml:"slope"`
	StartX     float64 `yaml:"start_x"`
	BaseHeight float64 `yaml:"base_height"`
}

// ViewConfig defines how world units map to terminal cells.
type ViewConfig struct {
	ColScale     float64 `yaml:"col_scale"`
	RowScale     float64 `yaml:"row_scale"`
	ThrustHoldMS int     `yaml:"thrust_hold_ms"`
}

// Validate reports parameters that would make the simulation meaningless.
func (c ChaseConfig) Validate() error {
	var errs []error
	if c.Physics.Thrust < 0 {
		errs = append(errs, fmt.Errorf("physics.thrust must be >= 0, got %v", c.Physics.Thrust))
	}
	if c.Physics.Gravity < 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be >= 0, got %v", c.Physics.Gravity))
	}
	if c.Chaser.CatchRadius < 0 {
		errs = append(errs, fmt.Errorf("chaser.catch_radius must be >= 0, got %v", c.Chaser.CatchRadius))
	}
	if c.Chaser.ResetGap < 0 {
		errs = append(errs, fmt.Errorf("chaser.reset_gap must be >= 0, got %v", c.Chaser.ResetGap))
	}
	if c.View.ColScale <= 0 {
		errs = append(errs, fmt.Errorf("view.col_scale must be > 0, got %v", c.View.ColScale))
	}
	if c.View.RowScale <= 0 {
		errs = append(errs, fmt.Errorf("view.row_scale must be > 0, got %v", c.View.RowScale))
	}
	if c.View.ThrustHoldMS < 0 {
		errs = append(errs, fmt.Errorf("view.thrust_hold_ms must be >= 0, got %d", c.View.ThrustHoldMS))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid chase config: %w", errors.Join(errs...))
	}
	return nil
}
