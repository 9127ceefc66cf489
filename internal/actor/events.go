package actor

import (
	"github.com/vovakirdan/seal-arcade/internal/event"
	"github.com/vovakirdan/seal-arcade/internal/geom"
)

// Event keys used by actors and their owner.
const (
	KeyActorsCreated   event.Key = "actors_created"
	KeyPlayerCollision event.Key = "player_collision"
	KeyNPCCollision    event.Key = "npc_collision"
	KeyAteFish         event.Key = "ate_fish"
	KeyGotEaten        event.Key = "got_eaten"
)

// SpawnRequest asks the owner to create a new NPC.
type SpawnRequest struct {
	Kind     Kind
	Position geom.Vector
	Velocity geom.Vector
}

// Collision records that two actors touched. A is the player when AIsPlayer is set.
type Collision struct {
	A, B      ID
	AIsPlayer bool
}

// Involves reports whether id is one of the two colliding actors.
func (c Collision) Involves(id ID) bool {
	return c.A == id || c.B == id
}

// Key returns the queue the collision belongs on.
func (c Collision) Key() event.Key {
	if c.AIsPlayer {
		return KeyPlayerCollision
	}
	return KeyNPCCollision
}

// AteFish is posted when the player eats a fish.
type AteFish struct {
	Fish ID
}

// GotEaten is posted when a shark catches the player.
type GotEaten struct {
	Shark ID
}

// NewSpawnEvent wraps a spawn request.
func NewSpawnEvent(req SpawnRequest) event.Event {
	return event.New(KeyActorsCreated, req)
}

// NewCollisionEvent wraps a collision on its key.
func NewCollisionEvent(c Collision) event.Event {
	return event.New(c.Key(), c)
}

// InvolvesActor matches collision events that name id.
func InvolvesActor(id ID) func(event.Event) bool {
	return func(ev event.Event) bool {
		c, ok := ev.Payload.(Collision)
		return ok && c.Involves(id)
	}
}
