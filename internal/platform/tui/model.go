package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skydodge/internal/config"
	"github.com/vovakirdan/skydodge/internal/core"
	"github.com/vovakirdan/skydodge/internal/games/skydodge"
)

// chromeRows is the number of terminal rows used by the HUD and help line.
const chromeRows = 2

// History records finished runs.
type History interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Options configures a terminal game session.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   core.IntStore // Best score; nil disables persistence
	History History       // Finished runs; nil disables run history
	Logger  *log.Logger
}

// Model is the Bubble Tea model running Sky Dodge.
type Model struct {
	opts   Options
	logger *log.Logger

	engine *skydodge.Engine
	screen *core.Screen
	canvas *core.Canvas
	hud    *HUD
	mapper *KeyMapper
	keys   KeyMap
	help   help.Model

	seed       int64
	width      int
	height     int
	state      core.GameState
	ticking    bool // A TickMsg is in flight
	scoreSaved bool // Whether the current run has been recorded
	quitting   bool
}

// NewModel creates a model with a running session.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	fw, fh := opts.Config.Playfield.Width, opts.Config.Playfield.Height
	cols, rows := fieldSize(opts.Runtime.ScreenW, opts.Runtime.ScreenH, fw, fh)
	screen := core.NewScreen(cols, rows)

	m := Model{
		opts:    opts,
		logger:  logger,
		screen:  screen,
		canvas:  core.NewCanvas(screen, fw, fh),
		hud:     NewHUD(skydodge.GameTitle),
		mapper:  NewKeyMapper(keys, time.Duration(opts.Config.Input.HoldMS)*time.Millisecond),
		keys:    keys,
		help:    help.New(),
		seed:    opts.Runtime.Seed,
		width:   opts.Runtime.ScreenW,
		height:  opts.Runtime.ScreenH,
		ticking: true,
	}
	m.engine = m.newEngine()
	m.state = m.engine.State()
	return m
}

// newEngine starts a fresh session bound to the model's input and HUD.
func (m *Model) newEngine() *skydodge.Engine {
	return skydodge.New(skydodge.Options{
		Config: m.opts.Config,
		Store:  m.opts.Store,
		Input:  m.mapper,
		Status: m.hud,
		Seed:   m.seed,
		Logger: m.logger,
	})
}

// fieldSize picks the largest cell area that fits the terminal and keeps
// the playfield's aspect ratio, counting a cell as twice as tall as wide.
func fieldSize(termW, termH int, fieldW, fieldH float64) (int, int) {
	rows := core.Max(termH-chromeRows, 1)
	cols := int(math.Round(float64(rows) * fieldW / fieldH * 2))
	if termW > 0 && cols > termW {
		cols = termW
		rows = core.Max(int(math.Round(float64(cols)*fieldH/fieldW/2)), 1)
	}
	return core.Max(cols, 1), rows
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		return m.restart()
	}

	m.mapper.Press(msg, time.Now())
	return m, nil
}

// restart replaces the finished session with a new one. The old engine
// is dropped, never reset.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.seed++
	m.screen.Clear()
	m.engine = m.newEngine()
	m.state = m.engine.State()
	m.scoreSaved = false
	m.keys.Restart.SetEnabled(false)
	m.logger.Debug("session restarted", "seed", m.seed)

	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// handleResize fits the playfield to the new terminal size. The session
// keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width

	fw, fh := m.opts.Config.Playfield.Width, m.opts.Config.Playfield.Height
	m.screen.Resize(fieldSize(msg.Width, msg.Height, fw, fh))

	if !m.ticking {
		// The loop has halted, so nothing else repaints the frame.
		m.screen.Clear()
		m.engine.Redraw(m.canvas)
	}
	return m, nil
}

// handleTick advances the session by one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.mapper.Expire(now)

	result := m.engine.Tick(m.canvas)
	m.state = result.State

	if m.state.GameOver {
		m.keys.Restart.SetEnabled(true)
		m.recordRun()
	}

	if !result.Continue {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// recordRun appends the finished run to history, once per session.
func (m *Model) recordRun() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.opts.History == nil || m.state.Score <= 0 {
		return
	}
	if _, err := m.opts.History.SaveScore(skydodge.GameID, m.state.Score); err != nil {
		m.logger.Warn("cannot record run", "score", m.state.Score, "error", err)
	}
}

// saveScreenshot saves the current playfield to a text file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".skydodge", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", skydodge.GameID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the last observed session state.
func (m Model) State() core.GameState {
	return m.state
}

// Ticking reports whether the tick loop is still scheduled.
func (m Model) Ticking() bool {
	return m.ticking
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	field := RenderScreen(m.screen)
	if m.width > 0 {
		field = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, field)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.hud.View(m.width),
		field,
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program for one terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
