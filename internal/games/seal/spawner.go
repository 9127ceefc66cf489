package seal

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/seal-arcade/internal/actor"
	"github.com/vovakirdan/seal-arcade/internal/config"
	"github.com/vovakirdan/seal-arcade/internal/geom"
)

// SpawnRequester accepts NPC spawn requests. *sim.Controller implements it.
type SpawnRequester interface {
	RequestSpawn(kind actor.Kind, pos, vel geom.Vector)
}

// timer counts down ticks until the next spawn of one kind.
type timer struct {
	kind      actor.Kind
	baseTicks int
	remaining int
	npc       config.NPCConfig
}

// Spawner fires fish and shark spawns on tick timers. Intervals shrink and
// NPC speed grows with the difficulty level.
type Spawner struct {
	cfg        config.SealConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	timers     []*timer
}

// NewSpawner creates a spawner for the given tick rate. Spawn heights are
// drawn from rng, so a seeded rng gives a repeatable run.
func NewSpawner(cfg config.SealConfig, tickRate int, rng *rand.Rand) *Spawner {
	if tickRate <= 0 {
		tickRate = 60
	}
	s := &Spawner{
		cfg:        cfg,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		timers: []*timer{
			{kind: actor.KindFish, baseTicks: secondsToTicks(cfg.Spawn.FishEvery, tickRate), npc: cfg.Fish},
			{kind: actor.KindShark, baseTicks: secondsToTicks(cfg.Spawn.SharkEvery, tickRate), npc: cfg.Shark},
		},
	}
	s.Reset()
	return s
}

func secondsToTicks(sec float64, tickRate int) int {
	return max(1, int(math.Round(sec*float64(tickRate))))
}

// Reset rearms every timer at its base interval.
func (s *Spawner) Reset() {
	for _, t := range s.timers {
		t.remaining = t.baseTicks
	}
}

// Interval returns the base interval in ticks for a kind, or 0.
func (s *Spawner) Interval(kind actor.Kind) int {
	for _, t := range s.timers {
		if t.kind == kind {
			return t.baseTicks
		}
	}
	return 0
}

// Level returns the current difficulty level.
func (s *Spawner) Level(score int, ticks uint64) float64 {
	return s.difficulty.Level(score, int(ticks))
}

// Step advances the timers by one tick and requests a spawn for every
// timer that expires. It returns the number of requests made.
func (s *Spawner) Step(dst SpawnRequester, score int, ticks uint64) int {
	n := 0
	for _, t := range s.timers {
		t.remaining--
		if t.remaining > 0 {
			continue
		}
		t.remaining = s.difficulty.Interval(t.baseTicks, score, int(ticks))
		pos, vel := s.entry(t.npc, score, ticks)
		dst.RequestSpawn(t.kind, pos, vel)
		n++
	}
	return n
}

// entry picks where an NPC enters: flush with the right edge at a random
// height, drifting left.
func (s *Spawner) entry(npc config.NPCConfig, score int, ticks uint64) (pos, vel geom.Vector) {
	w, h := s.cfg.World.Width, s.cfg.World.Height
	lo := s.cfg.Spawn.Margin
	span := max(0, h-2*lo-npc.Height)

	pos = geom.V(w-npc.Width, lo+s.rng.Float64()*span)
	speed := s.difficulty.Speed(npc.Speed, score, int(ticks))
	vel = geom.V(-speed, 0)
	return pos, vel
}
