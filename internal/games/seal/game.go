// Package seal implements Seal Snack: a seal swims up against gravity to
// eat fish drifting in from the right while avoiding sharks.
package seal

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seal-arcade/internal/config"
	"github.com/vovakirdan/seal-arcade/internal/core"
	"github.com/vovakirdan/seal-arcade/internal/geom"
	"github.com/vovakirdan/seal-arcade/internal/mode"
	"github.com/vovakirdan/seal-arcade/internal/sim"
)

// ID is the game identifier used for score storage.
const ID = "seal"

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger handed to the simulation and mode machine.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game ties the mode machine, the simulation controller, and the spawn
// timers together behind the platform's Game contract.
type Game struct {
	cfg     config.SealConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	rng     *rand.Rand
	machine *mode.Machine
	ctrl    *sim.Controller
	spawner *Spawner

	paused bool
	runs   int
}

// New creates a game on its start screen.
func New(cfg config.SealConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.machine = mode.New(g.newRun, mode.WithLogger(g.logger))
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Seal Snack"
}

// Reset reseeds the game and returns it to the start screen with a fresh,
// idle world behind the title.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.runs = 0
	g.machine.Restart()
	g.build()
}

// newRun is the mode machine's reset hook: every run starts from scratch.
func (g *Game) newRun() {
	g.runs++
	g.build()
	g.logger.Info("run started", "run", g.runs, "seed", g.runtime.Seed)
}

func (g *Game) build() {
	g.ctrl = sim.New(SimConfig(g.cfg), sim.WithLogger(g.logger))
	g.spawner = NewSpawner(g.cfg, g.runtime.TickRate, g.rng)
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.machine.Mode() {
	case mode.ModeStart:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBoost) {
			g.machine.Advance()
		}
		return core.StepResult{State: g.State()}
	case mode.ModeEnd:
		if in.Has(core.ActionConfirm) {
			g.machine.Advance()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionBoost) {
		g.ctrl.Boost(geom.V(0, g.cfg.Physics.Boost))
	}

	g.spawner.Step(g.ctrl, g.ctrl.Score(), g.ctrl.Ticks())
	res := g.ctrl.Tick()
	over := g.machine.Observe(res)
	if over {
		snap := g.ctrl.Snapshot()
		g.logger.Info("run over", "run", g.runs, "score", snap.Score, "fish", snap.FishEaten, "ticks", snap.Tick)
	}

	return core.StepResult{State: g.State(), RunOver: over}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ctrl.Score(),
		Ticks:    g.ctrl.Ticks(),
		Mode:     g.machine.Mode().String(),
		GameOver: g.machine.Mode() == mode.ModeEnd,
		Paused:   g.paused,
	}
}

// Mode returns the current screen.
func (g *Game) Mode() mode.Mode {
	return g.machine.Mode()
}

// Snapshot returns the simulation snapshot of the current run.
func (g *Game) Snapshot() sim.Snapshot {
	return g.ctrl.Snapshot()
}

// Runs returns how many runs have started since the last Reset.
func (g *Game) Runs() int {
	return g.runs
}

// Config returns the game configuration.
func (g *Game) Config() config.SealConfig {
	return g.cfg
}

// Level returns the current difficulty level, 0 to 1.
func (g *Game) Level() float64 {
	return g.spawner.Level(g.ctrl.Score(), g.ctrl.Ticks())
}

var _ core.Game = (*Game)(nil)
