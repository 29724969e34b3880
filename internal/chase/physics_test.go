package chase

import (
	"math"
	"testing"
)

func flatParams() Params {
	return DefaultParams()
}

func TestTerrainHeight(t *testing.T) {
	tests := []struct {
		name     string
		terrain  Terrain
		x        float64
		expected float64
	}{
		{"flat at origin", Terrain{Slope: 0, StartX: 0, BaseHeight: 10}, 0, 10},
		{"flat far away", Terrain{Slope: 0, StartX: 0, BaseHeight: 10}, -1e9, 10},
		{"uphill", Terrain{Slope: 2, StartX: 1, BaseHeight: 10}, 3, 14},
		{"downhill before start", Terrain{Slope: -0.5, StartX: 4, BaseHeight: 1}, 0, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.terrain.Height(tc.x); got != tc.expected {
				t.Errorf("Height(%v) = %v, expected %v", tc.x, got, tc.expected)
			}
		})
	}
}

func TestIntegrateHorizontalMonotonic(t *testing.T) {
	p := flatParams()

	for _, dt := range []float64{1.0 / 60, 0.1, 1, 5} {
		for _, ax := range []float64{0, 0.33, 2} {
			for _, vx := range []float64{0, 0.5, 40} {
				s := State{PlayerVX: vx, PlayerAX: ax, PlayerY: p.MinY}
				Integrate(&s, p, dt)

				if s.PlayerVX < vx {
					t.Errorf("dt=%v ax=%v vx=%v: velocity decreased to %v", dt, ax, vx, s.PlayerVX)
				}
				if ax == 0 && (s.PlayerX > 0) != (vx > 0) {
					t.Errorf("dt=%v vx=%v: x=%v, should increase iff vx > 0", dt, vx, s.PlayerX)
				}
			}
		}
	}
}

func TestIntegrateGravityWhileAirborne(t *testing.T) {
	p := flatParams()
	s := State{PlayerY: 10}

	Integrate(&s, p, 0.5)

	if s.PlayerVY != -0.25 {
		t.Errorf("PlayerVY = %v, expected -0.25", s.PlayerVY)
	}
	if s.PlayerY != 10-0.125 {
		t.Errorf("PlayerY = %v, expected 9.875", s.PlayerY)
	}
}

func TestIntegrateGroundClamp(t *testing.T) {
	p := flatParams()

	tests := []struct {
		name string
		y    float64
		vy   float64
		dt   float64
	}{
		{"resting on ground", p.MinY, 0, 0.1},
		{"on ground moving down", p.MinY, -3, 0.1},
		{"below ground", p.MinY - 1, -2, 0.1},
		{"just above, overshoots", p.MinY + 0.01, -5, 0.1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := State{PlayerY: tc.y, PlayerVY: tc.vy}
			Integrate(&s, p, tc.dt)

			if s.PlayerVY != 0 {
				t.Errorf("PlayerVY = %v, expected 0", s.PlayerVY)
			}
			if s.PlayerY != p.MinY {
				t.Errorf("PlayerY = %v, expected %v", s.PlayerY, p.MinY)
			}
		})
	}
}

func TestIntegrateFollowsSlopedTerrain(t *testing.T) {
	p := flatParams()
	p.Terrain = Terrain{Slope: 0.5, StartX: 0, BaseHeight: 10}

	s := State{PlayerX: 0, PlayerVX: 4, PlayerY: p.MinY}
	Integrate(&s, p, 0.5)

	// x moves to 2, where the ground has risen by 1
	if s.PlayerX != 2 {
		t.Fatalf("PlayerX = %v, expected 2", s.PlayerX)
	}
	if s.PlayerY != p.MinY+1 {
		t.Errorf("PlayerY = %v, expected %v", s.PlayerY, p.MinY+1)
	}
}

func TestIntegrateNonPositiveDtIsNoop(t *testing.T) {
	p := flatParams()
	initial := State{PlayerX: 3, PlayerY: 8, PlayerVX: 2, PlayerVY: -1, PlayerAX: 0.33}

	for _, dt := range []float64{0, -0.016, math.NaN()} {
		s := initial
		Integrate(&s, p, dt)
		if s != initial {
			t.Errorf("dt=%v changed state: %+v", dt, s)
		}
	}
}

func TestApplyThrust(t *testing.T) {
	p := flatParams()
	var s State

	ApplyThrust(&s, p, true)
	if s.PlayerAX != 0.33 {
		t.Errorf("PlayerAX = %v, expected 0.33", s.PlayerAX)
	}

	ApplyThrust(&s, p, false)
	if s.PlayerAX != 0 {
		t.Errorf("PlayerAX = %v, expected 0", s.PlayerAX)
	}
}
