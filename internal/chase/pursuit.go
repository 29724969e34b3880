package chase

import "math"

// Pursue advances the chaser by dt seconds and tests for capture.
// On capture the score is halved (never below 1) and the chaser is knocked
// back by ResetGap. Capture is not rate limited: if the knockback does not
// clear the radius, the next frame captures again.
func Pursue(s *State, p Params, dt float64) bool {
	if !(dt > 0) {
		return false
	}

	s.ChaserX += s.ChaserSpeed * dt

	if math.Abs(s.ChaserX-s.PlayerX) >= p.CatchRadius {
		return false
	}

	s.Score = max(1, floorDiv(s.Score, 2))
	s.ChaserX -= p.ResetGap
	s.Catches++
	return true
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
