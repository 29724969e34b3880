// Package session orchestrates a chase from character selection to quit.
// A Session is a two-state machine: Menu, then Running once a selection is
// confirmed. Running lasts until a quit is requested; captures never end it.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/decasepta/internal/chase"
	"github.com/vovakirdan/decasepta/internal/config"
	"github.com/vovakirdan/decasepta/internal/core"
)

// Phase is the top-level state of a session.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseRunning
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhaseRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// Selection is the payload carried from Menu to Running.
type Selection struct {
	Character  chase.Character
	Difficulty config.Difficulty
}

// Menu holds the selection cursors.
type Menu struct {
	CharacterIndex  int
	DifficultyIndex int
}

// Session owns the simulation exclusively. It is not safe for concurrent use;
// a single frame loop drives it.
type Session struct {
	phase     Phase
	menu      Menu
	roster    []chase.Character
	modes     []config.Difficulty
	params    chase.Params
	sim       *chase.Sim
	selection Selection
	last      chase.Snapshot
	done      bool
	logger    *log.Logger
}

// New creates a session in the Menu phase.
// The character cursor starts at the top of the roster and the
// difficulty cursor at the default mode.
func New(params chase.Params, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		phase:  PhaseMenu,
		menu:   Menu{DifficultyIndex: config.IndexOf(config.DefaultDifficulty)},
		roster: chase.Roster(),
		modes:  config.Difficulties(),
		params: params,
		logger: logger,
	}
}

// Preselect moves the menu cursors. Unknown values leave the cursor where it is.
func (s *Session) Preselect(character string, d config.Difficulty) {
	if i := chase.CharacterIndex(character); i >= 0 {
		s.menu.CharacterIndex = i
	}
	if d.Valid() {
		s.menu.DifficultyIndex = config.IndexOf(d)
	}
}

// HandleMenu applies one menu action. Returns true if it started the chase.
// Cursors wrap around in both directions.
func (s *Session) HandleMenu(a core.Action) bool {
	if s.phase != PhaseMenu || s.done {
		return false
	}

	switch a {
	case core.ActionUp:
		s.menu.CharacterIndex = wrap(s.menu.CharacterIndex-1, len(s.roster))
	case core.ActionDown:
		s.menu.CharacterIndex = wrap(s.menu.CharacterIndex+1, len(s.roster))
	case core.ActionLeft:
		s.menu.DifficultyIndex = wrap(s.menu.DifficultyIndex-1, len(s.modes))
	case core.ActionRight:
		s.menu.DifficultyIndex = wrap(s.menu.DifficultyIndex+1, len(s.modes))
	case core.ActionConfirm:
		s.Start(s.Highlighted())
		return true
	}
	return false
}

// Highlighted returns the selection under the menu cursors.
func (s *Session) Highlighted() Selection {
	return Selection{
		Character:  s.roster[s.menu.CharacterIndex],
		Difficulty: s.modes[s.menu.DifficultyIndex],
	}
}

// Start leaves the Menu and creates the simulation from sel.
// It is a no-op once the session is running.
func (s *Session) Start(sel Selection) {
	if s.phase != PhaseMenu || s.done {
		return
	}

	s.selection = sel
	s.sim = chase.NewSim(s.params, sel.Character, sel.Difficulty)
	s.last = s.sim.Snapshot()
	s.phase = PhaseRunning

	s.logger.Info("chase started",
		"character", sel.Character.Name,
		"difficulty", sel.Difficulty,
		"chaser_speed", s.sim.State().ChaserSpeed,
	)
}

// Tick processes one frame: menu navigation while in Menu, a simulation
// step while Running. A quit request ends the session before anything else
// happens in that frame.
func (s *Session) Tick(dt float64, in core.InputFrame) chase.StepResult {
	if s.done {
		return chase.StepResult{Snapshot: s.last, Skipped: true}
	}
	if in.Quit() {
		s.Quit()
		return chase.StepResult{Snapshot: s.last, Skipped: true}
	}

	if s.phase == PhaseMenu {
		for _, a := range in.MenuActions() {
			if s.HandleMenu(a) {
				break
			}
		}
		return chase.StepResult{Snapshot: s.last, Skipped: true}
	}

	res := s.sim.Step(dt, in.Thrust())
	s.last = res.Snapshot
	if res.Caught {
		s.logger.Info("chaser caught player, score halved",
			"score", res.Snapshot.Score,
			"tick", res.Snapshot.ElapsedTicks,
			"player_x", res.Snapshot.PlayerX,
			"chaser_x", res.Snapshot.ChaserX,
		)
	}
	return res
}

// Quit ends the session at the current frame boundary.
func (s *Session) Quit() {
	if s.done {
		return
	}
	s.done = true
	if s.phase == PhaseRunning {
		sum := s.Summary()
		s.logger.Info("chase ended",
			"score", sum.Score,
			"seconds", sum.ElapsedSeconds,
			"catches", sum.Catches,
		)
	}
}

// Phase returns the current top-level state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Done reports whether a quit was requested.
func (s *Session) Done() bool {
	return s.done
}

// Menu returns the menu cursors.
func (s *Session) Menu() Menu {
	return s.menu
}

// Roster returns the selectable characters.
func (s *Session) Roster() []chase.Character {
	return s.roster
}

// Modes returns the selectable difficulties.
func (s *Session) Modes() []config.Difficulty {
	return s.modes
}

// Params returns the simulation constants.
func (s *Session) Params() chase.Params {
	return s.params
}

// Snapshot returns the latest frame view and whether the chase has started.
func (s *Session) Snapshot() (chase.Snapshot, bool) {
	return s.last, s.phase == PhaseRunning
}

// Summary describes the session for the exit report.
func (s *Session) Summary() Summary {
	if s.phase != PhaseRunning {
		return Summary{}
	}
	st := s.sim.State()
	return Summary{
		Started:        true,
		Character:      s.selection.Character,
		Difficulty:     s.selection.Difficulty,
		Score:          st.Score,
		ElapsedSeconds: st.ElapsedSeconds(),
		ElapsedTicks:   st.ElapsedTicks,
		Catches:        st.Catches,
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
