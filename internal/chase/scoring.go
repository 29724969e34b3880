package chase

import "math"

// UpdateScore derives the score from distance and advances the timer.
// In a capture frame the halved score from Pursue stands; it is only
// re-derived from position on the next frame.
func UpdateScore(s *State, caught bool, dt float64) {
	if !(dt > 0) {
		return
	}

	if !caught {
		s.Score = int(math.Floor(s.PlayerX))
	}
	s.ElapsedTicks++
	s.Elapsed += dt
}
