package actor

import "github.com/vovakirdan/seal-arcade/internal/event"

// EdgeFudge is the slack used when deciding an NPC has left through the
// near edge.
const EdgeFudge = 2.0

// Behavior is the per-kind policy of an actor.
type Behavior interface {
	// Update advances the actor one tick: kinematics, collision intake and
	// the deletion check.
	Update(a *Actor, bus *event.Bus)

	// OnCollision reacts to a player collision naming a.
	OnCollision(a *Actor, c Collision, bus *event.Bus)

	// ShouldDelete reports whether a should remove itself this tick.
	ShouldDelete(a *Actor) bool
}

func behaviorFor(kind Kind) Behavior {
	switch kind {
	case KindFish:
		return FishBehavior{}
	case KindShark:
		return SharkBehavior{}
	default:
		return PlayerBehavior{}
	}
}

// PlayerBehavior moves the seal. It never consumes collisions and never
// removes itself; the owner ends the run instead.
type PlayerBehavior struct{}

func (PlayerBehavior) Update(a *Actor, _ *event.Bus) {
	a.Step()
}

func (PlayerBehavior) OnCollision(*Actor, Collision, *event.Bus) {}

func (PlayerBehavior) ShouldDelete(*Actor) bool { return false }

// FishBehavior drifts left and dies when it reaches the near edge or when
// the player catches it.
type FishBehavior struct{}

func (b FishBehavior) Update(a *Actor, bus *event.Bus) {
	a.Step()
	consumeCollisions(b, a, bus)
	if b.ShouldDelete(a) {
		a.MarkDeleted()
	}
}

func (FishBehavior) OnCollision(a *Actor, _ Collision, bus *event.Bus) {
	if a.Deleted() {
		return
	}
	a.MarkDeleted()
	bus.Notify(event.New(KeyAteFish, AteFish{Fish: a.ID}))
}

func (FishBehavior) ShouldDelete(a *Actor) bool {
	return a.AtNearEdge(EdgeFudge)
}

// SharkBehavior drifts left like a fish, but catching the player ends the
// game rather than removing the shark.
type SharkBehavior struct{}

func (b SharkBehavior) Update(a *Actor, bus *event.Bus) {
	a.Step()
	consumeCollisions(b, a, bus)
	if b.ShouldDelete(a) {
		a.MarkDeleted()
	}
}

func (SharkBehavior) OnCollision(a *Actor, _ Collision, bus *event.Bus) {
	bus.Notify(event.New(KeyGotEaten, GotEaten{Shark: a.ID}))
}

func (SharkBehavior) ShouldDelete(a *Actor) bool {
	return a.AtNearEdge(EdgeFudge)
}

// consumeCollisions drains the player collisions naming a and hands each to b.
func consumeCollisions(b Behavior, a *Actor, bus *event.Bus) {
	for _, ev := range bus.ConsumeMatching(KeyPlayerCollision, InvolvesActor(a.ID)) {
		b.OnCollision(a, ev.Payload.(Collision), bus)
	}
}
