// Package collision detects contact between the player and NPCs and
// reports it on the event bus.
package collision

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seal-arcade/internal/actor"
	"github.com/vovakirdan/seal-arcade/internal/event"
)

// Monitor runs the per-tick broad-phase check.
type Monitor struct {
	bus    *event.Bus
	logger *log.Logger
}

// New creates a monitor posting to bus. A nil logger discards output.
func New(bus *event.Bus, logger *log.Logger) *Monitor {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Monitor{bus: bus, logger: logger}
}

// CheckPlayerCollision tests the player's box against every live NPC and
// posts a player collision for each hit. Returns the number of hits.
//
// The test is a linear scan using Rectangle.Contains; the NPC count is
// small enough that no spatial index is needed.
func (m *Monitor) CheckPlayerCollision(player *actor.Actor, npcs []*actor.Actor) int {
	if player == nil {
		return 0
	}

	box := player.BoundingBox()
	hits := 0
	for _, npc := range npcs {
		if npc.Deleted() {
			continue
		}
		if box.Contains(npc.BoundingBox()) {
			m.logger.Debug("collision detected",
				"player", player.ID,
				"npc", npc.ID,
				"kind", npc.Kind,
			)
			m.RegisterCollision(player, npc, true)
			hits++
		}
	}
	return hits
}

// RegisterCollision posts a collision between a and b. It lands on the
// player queue when aIsPlayer is set and on the NPC queue otherwise.
func (m *Monitor) RegisterCollision(a, b *actor.Actor, aIsPlayer bool) {
	m.bus.Notify(actor.NewCollisionEvent(actor.Collision{
		A:         a.ID,
		B:         b.ID,
		AIsPlayer: aIsPlayer,
	}))
}
