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

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

// footerRows is the number of terminal rows used by the help line.
const footerRows = 1

// Options configures the terminal shell.
type Options struct {
	// HoldWindow overrides DefaultHoldWindow.
	HoldWindow time.Duration

	// Logger receives lifecycle events. Nil discards them.
	Logger *log.Logger

	// ScreenshotDir is where ctrl+s writes screen dumps.
	// Empty means ~/.asteroids/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model running one asteroids session.
type Model struct {
	game   *asteroids.Game
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	latch    *core.IntentLatch
	hold     *HoldTracker
	recorder *asteroids.Recorder

	screenshotDir string
	now           func() time.Time

	paused      bool
	awaitingAck bool // game over screen is shown until a key is pressed
	games       int
	bestScore   int
	quitting    bool
	err         error
}

// NewModel creates a model for game. The game is reset from cfg in Init.
func NewModel(game *asteroids.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	latch := core.NewIntentLatch()
	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 1)),
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        logger,
		latch:         latch,
		hold:          NewHoldTracker(latch, opts.HoldWindow),
		recorder:      asteroids.NewRecorder(latch),
		screenshotDir: opts.ScreenshotDir,
		now:           time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		// Quitting also acknowledges a pending game over, so the session ends
		// in the same state a headless replay of its inputs reaches.
		if m.awaitingAck {
			m.awaitingAck = false
			m.game.Restart()
		}
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	// Any other key acknowledges the final score and starts a new game.
	// The tick loop stopped at game over, so it is restarted here.
	if m.awaitingAck {
		m.awaitingAck = false
		m.hold.Reset()
		m.game.Restart()
		m.logger.Info("reset", "games", m.games)
		return m, tickCmd(m.config.TickRate)
	}

	if key.Matches(msg, m.keys.Pause) {
		m.paused = !m.paused
		m.hold.Reset()
		return m, nil
	}
	if m.paused {
		return m, nil
	}

	if c, ok := m.keys.Control(msg); ok {
		m.hold.Press(c, m.now())
	}
	return m, nil
}

// handleResize processes window resize events. The playfield is logical,
// so the running game is kept and only the view is rescaled.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.awaitingAck || m.err != nil {
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	m.hold.Expire(now)
	before := m.game.State()
	result := m.game.Step(m.recorder.Intents())

	if result.Err != nil {
		m.err = result.Err
		m.logger.Error("simulation halted", "tick", m.game.Tick(), "err", result.Err)
		return m, tea.Quit
	}

	state := result.State
	if state.Lives < before.Lives {
		m.logger.Debug("life lost", "lives", state.Lives)
	}
	if state.Wave > before.Wave {
		m.logger.Debug("wave cleared", "wave", state.Wave)
	}

	if state.GameOver {
		m.awaitingAck = true
		m.games++
		m.bestScore = max(m.bestScore, state.Score)
		m.hold.Reset()
		m.logger.Info("game over", "score", state.Score, "games", m.games)
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "err", err)
			return
		}
		dir = filepath.Join(home, ".asteroids", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var footer string
	switch {
	case m.awaitingAck:
		footer = gameOverStyle.Render("Press any key to play again") +
			footerStyle.Render(" • q quit")
	case m.paused:
		footer = pausedStyle.Render("PAUSED") + footerStyle.Render(" • p resume • q quit")
	default:
		footer = m.help.View(m.keys)
	}

	return RenderScreen(m.screen) + "\n" + footer
}

// Paused reports whether the session is paused.
func (m Model) Paused() bool {
	return m.paused
}

// AwaitingAck reports whether the game over screen is waiting for a key.
func (m Model) AwaitingAck() bool {
	return m.awaitingAck
}

// Err returns the simulation error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Result summarizes a finished terminal session.
type Result struct {
	Seed      int64
	Inputs    []core.InputFrame // One frame per simulated tick
	Games     int
	BestScore int
	Final     asteroids.Snapshot
}

// Result returns the session summary.
func (m Model) Result() Result {
	return Result{
		Seed:      m.config.Seed,
		Inputs:    m.recorder.Frames(),
		Games:     m.games,
		BestScore: max(m.bestScore, m.game.State().Score),
		Final:     m.game.Snapshot(),
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *asteroids.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: %w", err)
	}

	fm, ok := final.(Model)
	if !ok {
		return model.Result(), nil
	}
	if fm.err != nil {
		return fm.Result(), fmt.Errorf("tui: %w", fm.err)
	}
	return fm.Result(), nil
}
