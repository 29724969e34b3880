package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/decasepta/internal/core"
	"github.com/vovakirdan/decasepta/internal/session"
)

const (
	flashDuration     = time.Second // capture message lifetime
	defaultThrustHold = 150 * time.Millisecond
)

// Options configures the interactive front end.
type Options struct {
	Runtime    core.RuntimeConfig
	Scene      SceneConfig
	ThrustHold time.Duration
	Logger     *log.Logger
}

// Model is the Bubble Tea model driving a chase session.
// Every TickMsg is one frame; its dt is measured from the tick timestamps.
type Model struct {
	session    *session.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	scene      SceneConfig
	keys       KeyMap
	help       help.Model
	thrust     ThrustLatch
	delta      session.DeltaTimer
	flashUntil time.Time
	now        func() time.Time
	logger     *log.Logger
}

// NewModel creates a Bubble Tea model for the given session.
func NewModel(s *session.Session, opts Options) Model {
	cfg := opts.Runtime.Normalize()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	hold := opts.ThrustHold
	if hold <= 0 {
		hold = defaultThrustHold
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session: s,
		screen:  core.NewScreen(cfg.ScreenW, sceneHeight(cfg.ScreenH)),
		config:  cfg,
		scene:   opts.Scene,
		keys:    DefaultKeyMap(),
		help:    h,
		thrust:  NewThrustLatch(hold),
		now:     time.Now,
		logger:  logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps a key press to an action for the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.session.Quit()
		return m, tea.Quit
	case core.ActionThrust:
		if m.session.Phase() == session.PhaseRunning {
			m.thrust.Press(m.now())
		}
	case core.ActionNone:
	default:
		m.session.HandleMenu(a)
	}
	return m, nil
}

// handleResize keeps the frame buffer matched to the terminal.
// The chase itself is independent of the screen size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, sceneHeight(msg.Height))
	m.help.Width = msg.Width
	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick advances the session by the time since the previous tick.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if m.session.Done() {
		return m, nil
	}

	dt := m.delta.Mark(t)
	if m.session.Phase() == session.PhaseRunning {
		frame := core.NewInputFrame()
		if m.thrust.Active(t) {
			frame.Set(core.ActionThrust)
		}
		if res := m.session.Tick(dt, frame); res.Caught {
			m.flashUntil = t.Add(flashDuration)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current scene as plain text under ~/.decasepta/screenshots.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".decasepta", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	filename := fmt.Sprintf("chase_%s.txt", m.now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the menu or the current frame.
func (m Model) View() string {
	if m.session.Done() {
		return ""
	}

	snap, running := m.session.Snapshot()
	if !running {
		return RenderMenu(m.session, m.help, m.keys, m.config.ScreenW, m.config.ScreenH)
	}

	flash := m.now().Before(m.flashUntil)
	DrawScene(m.screen, snap, m.session.Params(), m.scene, flash)
	return RenderScreen(m.screen) + "\n" + m.help.ShortHelpView(m.keys.ChaseHelp())
}

// Session returns the session driven by this model.
func (m Model) Session() *session.Session {
	return m.session
}

// sceneHeight leaves the bottom row for the help line.
func sceneHeight(h int) int {
	return max(1, h-1)
}

// Run starts the Bubble Tea program for the session and blocks until quit.
func Run(s *session.Session, opts Options) error {
	p := tea.NewProgram(NewModel(s, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
