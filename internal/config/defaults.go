package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the built-in chase configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Physics: PhysicsConfig{
			Thrust:  0.33,
			Gravity: 0.5,
			MinY:    4.0,
		},
		Player: PlayerConfig{
			StartX: 0.0,
			StartY: 10.0,
		},
		Chaser: ChaserConfig{
			StartX:      -500.0,
			CatchRadius: 1.0,
			ResetGap:    500.0,
			Glyph:       "🧟",
		},
		Terrain: TerrainConfig{
			Slope:      0.0,
			StartX:     0.0,
			BaseHeight: 10.0,
		},
		View: ViewConfig{
			ColScale:     1.0,
			RowScale:     1.0,
			ThrustHoldMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultChaseYAML
}
