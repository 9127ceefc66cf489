package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seal-arcade/internal/core"
	"github.com/vovakirdan/seal-arcade/internal/sim"
	"github.com/vovakirdan/seal-arcade/internal/storage"
)

// RunSaver persists finished runs. *storage.Store implements it.
type RunSaver interface {
	SaveRun(r storage.RunRecord) (int64, error)
}

// runDetails is implemented by games that report more than a score.
type runDetails interface {
	Snapshot() sim.Snapshot
}

// Option configures a Model.
type Option func(*Model)

// WithStore records every finished run in s.
func WithStore(s RunSaver) Option {
	return func(m *Model) { m.store = s }
}

// WithPlayer sets the name stored with each run.
func WithPlayer(name string) Option {
	return func(m *Model) { m.player = name }
}

// WithLogger sets the model's logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithScreenshotDir sets where ctrl+s writes screen dumps. An empty dir
// disables screenshots.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) { m.screenshotDir = dir }
}

// Model is the Bubble Tea model that runs a game.
type Model struct {
	game          core.Game
	screen        *core.Screen
	store         RunSaver
	config        core.RuntimeConfig
	keys          *KeyMapper
	inputFrame    core.InputFrame
	gameState     core.GameState
	logger        *log.Logger
	player        string
	screenshotDir string
	runsSaved     *int
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		logger:     log.New(io.Discard),
		runsSaved:  new(int),
	}
	if home, err := os.UserHomeDir(); err == nil {
		m.screenshotDir = filepath.Join(home, ".seal", "screenshots")
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are buffered until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one simulation step and records a run when it ends.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.RunOver {
		m.recordRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the run that just ended. Failures are logged; the game
// carries on regardless.
func (m Model) recordRun() {
	rec := storage.RunRecord{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  m.gameState.Score,
		Ticks:  m.gameState.Ticks,
		Seed:   m.config.Seed,
	}
	if d, ok := m.game.(runDetails); ok {
		rec.FishEaten = d.Snapshot().FishEaten
	}

	m.logger.Info("run finished", "player", rec.Player, "score", rec.Score, "fish", rec.FishEaten, "ticks", rec.Ticks)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(rec); err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	*m.runsSaved++
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", errors.New("screenshots disabled")
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", m.screenshotDir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// RunsSaved returns how many runs this model has stored.
func (m Model) RunsSaved() int {
	return *m.runsSaved
}

// Run starts the Bubble Tea program for the given game.
func Run(game core.Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
