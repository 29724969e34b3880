package chase

// Integrate advances the player by dt seconds using the current PlayerAX.
// Horizontal velocity has no cap. Landing is absorbing: at or below the
// ground vertical velocity is zeroed, never reflected. A non-positive dt
// leaves the state untouched.
func Integrate(s *State, p Params, dt float64) {
	if !(dt > 0) {
		return
	}

	s.PlayerVX += s.PlayerAX * dt
	s.PlayerX += s.PlayerVX * dt

	ground := p.GroundAt(s.PlayerX)
	if s.PlayerY > ground {
		s.PlayerVY -= p.Gravity * dt
	} else {
		s.PlayerVY = 0
	}
	s.PlayerY += s.PlayerVY * dt

	// A falling step may overshoot the ground; it stops there.
	if s.PlayerY < ground {
		s.PlayerY = ground
		s.PlayerVY = 0
	}
}

// ApplyThrust sets the horizontal acceleration from the input signal.
func ApplyThrust(s *State, p Params, thrust bool) {
	if thrust {
		s.PlayerAX = p.Thrust
	} else {
		s.PlayerAX = 0
	}
}
