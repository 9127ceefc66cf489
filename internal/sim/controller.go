// Package sim owns the live actors of one run and advances them one tick
// at a time. The Controller is the single writer of its actor registry and
// event bus; nothing else mutates them.
package sim

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seal-arcade/internal/actor"
	"github.com/vovakirdan/seal-arcade/internal/collision"
	"github.com/vovakirdan/seal-arcade/internal/event"
	"github.com/vovakirdan/seal-arcade/internal/geom"
)

// Outcome is the control-flow result of a tick.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeGameOver
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Tick    uint64
	Outcome Outcome
	Spawned []actor.ID // NPCs registered this tick
	Removed []actor.ID // NPCs swept this tick
	Score   int
}

// Config describes the arena and the actors a Controller creates.
type Config struct {
	WorldMin    geom.Vector
	WorldMax    geom.Vector
	SpawnMin    geom.Vector // bounds assigned to every NPC
	SpawnMax    geom.Vector
	PlayerStart geom.Vector
	Player      actor.Spec
	Fish        actor.Spec
	Shark       actor.Spec
	FishPoints  int
	MaxVelocity geom.Vector
}

// DefaultConfig returns the stock arena: 1280x840 with
// NPCs sharing the screen bounds.
func DefaultConfig() Config {
	return Config{
		WorldMin:    geom.V(0, 0),
		WorldMax:    geom.V(1280, 840),
		SpawnMin:    geom.V(0, 0),
		SpawnMax:    geom.V(1280, 840),
		PlayerStart: actor.PlayerStart,
		Player:      actor.DefaultPlayerSpec,
		Fish:        actor.DefaultFishSpec,
		Shark:       actor.DefaultSharkSpec,
		FishPoints:  1,
		MaxVelocity: actor.DefaultMaxVelocity,
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for tick tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithBus makes the Controller use an existing bus.
func WithBus(b *event.Bus) Option {
	return func(c *Controller) {
		if b != nil {
			c.bus = b
		}
	}
}

// Controller runs the simulation for one run of the game.
type Controller struct {
	cfg     Config
	bus     *event.Bus
	monitor *collision.Monitor
	logger  *log.Logger

	player *actor.Actor
	npcs   []*actor.Actor
	nextID actor.ID

	tick      uint64
	score     int
	fishEaten int
	contacts  int
	gameOver  bool
}

// New creates a Controller with a fresh player and an empty NPC registry.
func New(cfg Config, opts ...Option) *Controller {
	c := &Controller{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.bus == nil {
		c.bus = event.NewBus()
	}
	c.monitor = collision.New(c.bus, c.logger)

	c.player = actor.NewPlayer(cfg.PlayerStart, cfg.Player)
	c.player.ID = c.allocID()
	c.applyMaxVelocity(c.player)
	c.player.SetBounds(cfg.WorldMin, cfg.WorldMax)

	return c
}

func (c *Controller) allocID() actor.ID {
	c.nextID++
	return c.nextID
}

func (c *Controller) applyMaxVelocity(a *actor.Actor) {
	if c.cfg.MaxVelocity != (geom.Vector{}) {
		a.MaxVelocity = c.cfg.MaxVelocity
	}
}

// RequestSpawn queues a new NPC. It is created at the start of the next tick.
func (c *Controller) RequestSpawn(kind actor.Kind, pos, vel geom.Vector) {
	c.bus.Notify(actor.NewSpawnEvent(actor.SpawnRequest{
		Kind:     kind,
		Position: pos,
		Velocity: vel,
	}))
}

// Apply executes an input command against the simulation.
func (c *Controller) Apply(cmd actor.Command) {
	if cmd == nil || c.gameOver {
		return
	}
	cmd.Execute()
}

// Boost gives the player an impulse.
func (c *Controller) Boost(impulse geom.Vector) {
	c.Apply(actor.AddSpeedCommand{Target: c.player, Impulse: impulse})
}

// Tick advances the run by one step. The order of the steps matters: each
// one consumes events produced by the ones before it.
//
//  1. spawn intake
//  2. collision check
//  3. game-over check (ends the tick early)
//  4. NPC updates, which consume their own collisions
//  5. player update
//  6. sweep of tombstoned NPCs
//  7. scoring
//
// Once the run is over, Tick does nothing and keeps reporting game over.
func (c *Controller) Tick() TickResult {
	if c.gameOver {
		return TickResult{Tick: c.tick, Outcome: OutcomeGameOver, Score: c.score}
	}

	c.tick++
	res := TickResult{Tick: c.tick, Outcome: OutcomeContinue}

	res.Spawned = c.intakeSpawns()

	c.monitor.CheckPlayerCollision(c.player, c.npcs)
	c.contacts = c.bus.Len(actor.KeyPlayerCollision)

	if eaten := c.bus.Consume(actor.KeyGotEaten); len(eaten) > 0 {
		c.gameOver = true
		shark := eaten[0].Payload.(actor.GotEaten).Shark
		c.logger.Info("seal got eaten", "tick", c.tick, "shark", shark, "score", c.score)
		res.Outcome = OutcomeGameOver
		res.Score = c.score
		return res
	}

	for _, npc := range c.npcs {
		npc.Update(c.bus)
	}

	c.player.Update(c.bus)

	res.Removed = c.sweep()

	if ate := c.bus.Consume(actor.KeyAteFish); len(ate) > 0 {
		c.fishEaten += len(ate)
		c.score += len(ate) * c.cfg.FishPoints
		c.logger.Debug("ate fish", "tick", c.tick, "count", len(ate), "score", c.score)
	}

	res.Score = c.score
	return res
}

// intakeSpawns drains spawn requests and registers the new NPCs.
func (c *Controller) intakeSpawns() []actor.ID {
	reqs := c.bus.Consume(actor.KeyActorsCreated)
	if len(reqs) == 0 {
		return nil
	}

	ids := make([]actor.ID, 0, len(reqs))
	for _, ev := range reqs {
		req := ev.Payload.(actor.SpawnRequest)
		state := geom.State{Position: req.Position, Velocity: req.Velocity}

		var npc *actor.Actor
		switch req.Kind {
		case actor.KindFish:
			npc = actor.NewFish(state, c.cfg.Fish)
		case actor.KindShark:
			npc = actor.NewShark(state, c.cfg.Shark)
		default:
			c.logger.Warn("ignoring spawn request", "kind", req.Kind)
			continue
		}

		npc.ID = c.allocID()
		c.applyMaxVelocity(npc)
		npc.SetBounds(c.cfg.SpawnMin, c.cfg.SpawnMax)
		c.npcs = append(c.npcs, npc)
		ids = append(ids, npc.ID)

		c.logger.Debug("spawned", "tick", c.tick, "id", npc.ID, "kind", npc.Kind, "pos", npc.State.Position)
	}
	return ids
}

// sweep removes tombstoned NPCs, keeping the order of the survivors.
func (c *Controller) sweep() []actor.ID {
	var removed []actor.ID
	live := c.npcs[:0]
	for _, npc := range c.npcs {
		if npc.Deleted() {
			removed = append(removed, npc.ID)
			continue
		}
		live = append(live, npc)
	}
	for i := len(live); i < len(c.npcs); i++ {
		c.npcs[i] = nil
	}
	c.npcs = live
	return removed
}

// Player returns the seal.
func (c *Controller) Player() *actor.Actor { return c.player }

// NPCs returns the live NPC registry in spawn order. Callers must not modify it.
func (c *Controller) NPCs() []*actor.Actor { return c.npcs }

// Bus returns the controller's event bus.
func (c *Controller) Bus() *event.Bus { return c.bus }

// Score returns the current score.
func (c *Controller) Score() int { return c.score }

// FishEaten returns the number of fish eaten this run.
func (c *Controller) FishEaten() int { return c.fishEaten }

// Ticks returns the number of ticks simulated.
func (c *Controller) Ticks() uint64 { return c.tick }

// GameOver reports whether the run has ended.
func (c *Controller) GameOver() bool { return c.gameOver }

// Config returns the controller's configuration.
func (c *Controller) Config() Config { return c.cfg }
