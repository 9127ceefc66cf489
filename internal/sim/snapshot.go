package sim

import (
	"github.com/vovakirdan/seal-arcade/internal/actor"
	"github.com/vovakirdan/seal-arcade/internal/geom"
)

// Tag tells the renderer how to draw a sprite.
type Tag int

const (
	TagPlayer    Tag = iota
	TagPlayerHit     // player touching an NPC this tick
	TagFish
	TagShark
)

// Sprite is what the render sink needs for one live actor.
type Sprite struct {
	ID   actor.ID
	Kind actor.Kind
	Box  geom.Rectangle
	Tag  Tag
}

// Sprites returns the live actors for drawing, NPCs first in spawn order
// and the player last so it draws on top.
func (c *Controller) Sprites() []Sprite {
	out := make([]Sprite, 0, len(c.npcs)+1)
	for _, npc := range c.npcs {
		tag := TagFish
		if npc.Kind == actor.KindShark {
			tag = TagShark
		}
		out = append(out, Sprite{ID: npc.ID, Kind: npc.Kind, Box: npc.BoundingBox(), Tag: tag})
	}

	tag := TagPlayer
	if c.contacts > 0 {
		tag = TagPlayerHit
	}
	out = append(out, Sprite{ID: c.player.ID, Kind: actor.KindPlayer, Box: c.player.BoundingBox(), Tag: tag})
	return out
}

// Snapshot captures the run state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	FishEaten int
	Fish      int
	Sharks    int
	Player    geom.State
	GameOver  bool
	Pending   int // events still queued on the bus
}

// Snapshot returns the current run snapshot.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      c.tick,
		Score:     c.score,
		FishEaten: c.fishEaten,
		Player:    c.player.State,
		GameOver:  c.gameOver,
		Pending:   c.bus.Pending(),
	}
	for _, npc := range c.npcs {
		switch npc.Kind {
		case actor.KindFish:
			s.Fish++
		case actor.KindShark:
			s.Sharks++
		}
	}
	return s
}
