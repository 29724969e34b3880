package config

import "strings"

// Difficulty names a chaser speed mode.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyInsane Difficulty = "insane"
)

// DefaultDifficulty is used when no mode was chosen.
const DefaultDifficulty = DifficultyMedium

// chaserSpeeds is the fixed speed table, in world units per second.
var chaserSpeeds = map[Difficulty]float64{
	DifficultyEasy:   0.5,
	DifficultyMedium: 1.0,
	DifficultyHard:   3.0,
	DifficultyInsane: 7.0,
}

// Difficulties returns all modes in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyInsane}
}

// ChaserSpeedFor maps a mode to the chaser's constant speed.
// Unrecognized modes get the medium speed rather than an error.
func ChaserSpeedFor(d Difficulty) float64 {
	if speed, ok := chaserSpeeds[d]; ok {
		return speed
	}
	return chaserSpeeds[DefaultDifficulty]
}

// ParseDifficulty resolves a user-supplied mode name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	_, ok := chaserSpeeds[d]
	return d, ok
}

// Valid reports whether d is one of the known modes.
func (d Difficulty) Valid() bool {
	_, ok := chaserSpeeds[d]
	return ok
}

// IndexOf returns the menu position of d, or the default's position if unknown.
func IndexOf(d Difficulty) int {
	for i, m := range Difficulties() {
		if m == d {
			return i
		}
	}
	return IndexOf(DefaultDifficulty)
}
