package chase

import (
	"math"
	"testing"

	"github.com/vovakirdan/decasepta/internal/config"
)

func newTestSim() *Sim {
	return NewSim(DefaultParams(), DefaultCharacter(), config.DifficultyMedium)
}

func TestNewSimInitialState(t *testing.T) {
	sim := NewSim(DefaultParams(), DefaultCharacter(), config.DifficultyInsane)
	s := sim.State()

	if s.PlayerX != 0 || s.PlayerY != 10 || s.ChaserX != -500 {
		t.Errorf("unexpected initial positions: %+v", s)
	}
	if s.ChaserSpeed != 7.0 {
		t.Errorf("ChaserSpeed = %v, expected 7.0 for insane", s.ChaserSpeed)
	}
	if s.Score != 0 || s.ElapsedTicks != 0 {
		t.Errorf("score and timer should start at zero: %+v", s)
	}
}

func TestNewSimUnknownDifficulty(t *testing.T) {
	sim := NewSim(DefaultParams(), DefaultCharacter(), config.Difficulty("nightmare"))
	if sim.State().ChaserSpeed != 1.0 {
		t.Errorf("ChaserSpeed = %v, expected medium fallback 1.0", sim.State().ChaserSpeed)
	}
}

// Constant thrust from rest: closed-form kinematics, no capture.
func TestSimScenarioConstantThrust(t *testing.T) {
	sim := newTestSim()
	const (
		dt    = 1.0
		steps = 10
		a     = 0.33
	)

	for i := 1; i <= steps; i++ {
		res := sim.Step(dt, true)
		if res.Caught {
			t.Fatalf("step %d: unexpected capture, gap %v", i, res.Snapshot.Gap())
		}

		// Semi-implicit Euler: v_n = n*a*dt, x_n = a*dt^2 * n(n+1)/2
		n := float64(i)
		expectedX := a * dt * dt * n * (n + 1) / 2
		s := sim.State()
		if math.Abs(s.PlayerX-expectedX) > 1e-6 {
			t.Errorf("step %d: PlayerX = %v, expected %v", i, s.PlayerX, expectedX)
		}
		if math.Abs(s.PlayerVX-n*a*dt) > 1e-6 {
			t.Errorf("step %d: PlayerVX = %v, expected %v", i, s.PlayerVX, n*a*dt)
		}
		if s.Gap() <= 1.0 {
			t.Errorf("step %d: gap %v closed below the catch radius", i, s.Gap())
		}
		if s.PlayerY < DefaultParams().MinY {
			t.Errorf("step %d: PlayerY %v fell below ground", i, s.PlayerY)
		}
	}

	s := sim.State()
	if s.ChaserX != -490 {
		t.Errorf("ChaserX = %v, expected -490", s.ChaserX)
	}
	if s.Score != int(math.Floor(s.PlayerX)) {
		t.Errorf("Score = %d, expected floor(%v)", s.Score, s.PlayerX)
	}
	if s.ElapsedTicks != steps || s.ElapsedSeconds() != 10 {
		t.Errorf("timer = %d ticks / %ds, expected 10 / 10", s.ElapsedTicks, s.ElapsedSeconds())
	}
}

// Chaser on top of the player: one step halves the score and knocks the chaser back.
func TestSimScenarioCapture(t *testing.T) {
	sim := newTestSim()
	sim.state = State{
		PlayerX:     100.2,
		PlayerY:     4,
		PlayerVX:    1,
		ChaserX:     100.2,
		ChaserSpeed: 1,
		Score:       100,
	}

	res := sim.Step(0.5, false)
	if !res.Caught {
		t.Fatal("expected capture")
	}

	s := sim.State()
	if s.Score != 50 {
		t.Errorf("Score = %d, expected 50 (halved, not re-derived from position)", s.Score)
	}
	if s.ChaserX != s.PlayerX-500 {
		t.Errorf("ChaserX = %v, expected PlayerX-500 = %v", s.ChaserX, s.PlayerX-500)
	}
	if !res.Snapshot.Caught || res.Snapshot.Score != 50 {
		t.Errorf("snapshot should report the capture: %+v", res.Snapshot)
	}

	// Next frame derives the score from position again
	res = sim.Step(0.5, false)
	if res.Caught {
		t.Fatal("knockback should clear the radius")
	}
	if got, expected := sim.State().Score, int(math.Floor(sim.State().PlayerX)); got != expected {
		t.Errorf("Score = %d, expected %d", got, expected)
	}
}

// Non-positive dt leaves the whole state untouched.
func TestSimScenarioNoopFrame(t *testing.T) {
	sim := newTestSim()
	for i := 0; i < 30; i++ {
		sim.Step(1.0/60, i%2 == 0)
	}
	before := sim.State()
	beforeSnap := sim.Snapshot()

	for _, dt := range []float64{0, -1.0 / 60, math.Inf(-1), math.NaN()} {
		res := sim.Step(dt, true)
		if !res.Skipped {
			t.Errorf("dt=%v: expected Skipped", dt)
		}
		if sim.State() != before {
			t.Errorf("dt=%v changed state:\n%+v\n%+v", dt, sim.State(), before)
		}
		if res.Snapshot != beforeSnap {
			t.Errorf("dt=%v changed snapshot", dt)
		}
	}
}

// Knockback smaller than the catch radius: capture repeats every frame
// until the gap finally reaches the radius.
func TestSimRepeatedCaptureWithinRadius(t *testing.T) {
	p := DefaultParams()
	p.ResetGap = 0.25
	sim := NewSim(p, DefaultCharacter(), config.DifficultyMedium)
	sim.state = State{PlayerX: 0, PlayerY: p.MinY, ChaserX: 0, ChaserSpeed: 0, Score: 100}

	expectedScores := []int{50, 25, 12, 6}
	for i, expected := range expectedScores {
		res := sim.Step(0.1, false)
		if !res.Caught {
			t.Fatalf("frame %d: expected repeated capture, gap %v", i, res.Snapshot.Gap())
		}
		if res.Snapshot.Score != expected {
			t.Errorf("frame %d: Score = %d, expected %d", i, res.Snapshot.Score, expected)
		}
	}

	// Gap is now exactly 1.0: no more captures
	res := sim.Step(0.1, false)
	if res.Caught {
		t.Error("capture should stop once the gap reaches the radius")
	}
	if sim.State().Catches != 4 {
		t.Errorf("Catches = %d, expected 4", sim.State().Catches)
	}
}

func TestSimScoreTracksDistance(t *testing.T) {
	sim := NewSim(DefaultParams(), DefaultCharacter(), config.DifficultyEasy)

	for i := 0; i < 600; i++ {
		res := sim.Step(1.0/60+float64(i%3)*0.001, i%4 != 0)
		if res.Caught {
			continue
		}
		if expected := int(math.Floor(res.Snapshot.PlayerX)); res.Snapshot.Score != expected {
			t.Fatalf("frame %d: Score = %d, expected floor(PlayerX) = %d", i, res.Snapshot.Score, expected)
		}
	}
}

func TestSimDeterminism(t *testing.T) {
	run := func() State {
		sim := NewSim(DefaultParams(), DefaultCharacter(), config.DifficultyHard)
		for i := 0; i < 1000; i++ {
			dt := 1.0/60 + float64(i%5)*0.0007
			sim.Step(dt, i%7 < 4)
		}
		return sim.State()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("identical inputs diverged:\n%+v\n%+v", a, b)
	}
}

func TestSimEventuallyCaughtWithoutThrust(t *testing.T) {
	sim := NewSim(DefaultParams(), DefaultCharacter(), config.DifficultyInsane)

	caught := false
	for i := 0; i < 200 && !caught; i++ {
		caught = sim.Step(0.5, false).Caught
	}
	if !caught {
		t.Fatal("an idle player should be caught by the insane chaser")
	}

	s := sim.State()
	if s.Score < 1 {
		t.Errorf("Score = %d after capture, expected >= 1", s.Score)
	}
	if s.Gap() < 400 {
		t.Errorf("gap after knockback = %v, expected roughly 500", s.Gap())
	}
}

func TestRosterAndLookup(t *testing.T) {
	if len(Roster()) != 27 {
		t.Errorf("roster has %d characters, expected 27", len(Roster()))
	}
	if c := DefaultCharacter(); c.Name != "Ghost" || c.Glyph != "👻" {
		t.Errorf("DefaultCharacter() = %+v", c)
	}
	if c, ok := FindCharacter("dragon"); !ok || c.Glyph != "🐉" {
		t.Errorf("FindCharacter(dragon) = %+v, %v", c, ok)
	}
	if _, ok := FindCharacter("unicorn"); ok {
		t.Error("FindCharacter should reject unknown names")
	}

	r := Roster()
	r[0].Name = "changed"
	if Roster()[0].Name != "Skull" {
		t.Error("Roster() must return a copy")
	}
}
