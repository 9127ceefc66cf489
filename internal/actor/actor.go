// Package actor models the entities of the seal game: the player-controlled
// seal and the fish and sharks it meets. Every actor shares the same
// bounded kinematic update; what differs per kind (how it reacts to a
// collision and when it removes itself) lives in a Behavior.
package actor

import (
	"github.com/vovakirdan/seal-arcade/internal/event"
	"github.com/vovakirdan/seal-arcade/internal/geom"
)

// ID identifies an actor within one run. IDs are compared, never dereferenced.
type ID uint64

// Kind is the variant tag of an actor.
type Kind int

const (
	KindPlayer Kind = iota
	KindFish
	KindShark
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindFish:
		return "fish"
	case KindShark:
		return "shark"
	default:
		return "unknown"
	}
}

// DefaultMaxVelocity caps impulse-driven speed on each axis.
var DefaultMaxVelocity = geom.V(640, 360)

// Actor is a simulated entity with kinematic state and movement bounds.
//
// Bounds must be assigned with SetBounds before the first Step; an actor
// with unset bounds clamps to a zero-sized region at the origin.
type Actor struct {
	ID          ID
	Kind        Kind
	State       geom.State
	Size        geom.Vector
	Bounciness  float64 // fraction of velocity kept on a boundary bounce, 0..1
	MaxVelocity geom.Vector

	boundsMin geom.Vector
	boundsMax geom.Vector
	deleted   bool
	behavior  Behavior
}

// New creates an actor of the given kind. The behavior is chosen from the kind.
func New(kind Kind, state geom.State, size geom.Vector, bounciness float64) *Actor {
	return &Actor{
		Kind:        kind,
		State:       state,
		Size:        size,
		Bounciness:  bounciness,
		MaxVelocity: DefaultMaxVelocity,
		behavior:    behaviorFor(kind),
	}
}

// SetBounds assigns the region the actor is kept inside.
func (a *Actor) SetBounds(lo, hi geom.Vector) {
	a.boundsMin = lo
	a.boundsMax = hi
}

// Bounds returns the assigned movement region.
func (a *Actor) Bounds() (lo, hi geom.Vector) {
	return a.boundsMin, a.boundsMax
}

// IsPlayer reports whether this is the player-controlled actor.
func (a *Actor) IsPlayer() bool {
	return a.Kind == KindPlayer
}

// Deleted reports whether the actor is tombstoned.
func (a *Actor) Deleted() bool {
	return a.deleted
}

// MarkDeleted tombstones the actor; the owner removes it at the next sweep.
func (a *Actor) MarkDeleted() {
	a.deleted = true
}

// Behavior returns the kind-specific policy.
func (a *Actor) Behavior() Behavior {
	return a.behavior
}

// BoundingBox returns the actor's box in world space.
func (a *Actor) BoundingBox() geom.Rectangle {
	return geom.NewRectangle(a.State.Position, a.Size)
}

// Update runs the actor's behavior for one tick.
func (a *Actor) Update(bus *event.Bus) {
	a.behavior.Update(a, bus)
}

// Step advances the kinematic state by one tick.
//
// Velocity picks up acceleration, the candidate position is tested against
// the bounds (the far edge uses max-size so the whole body stays inside),
// any axis that leaves the bounds has its velocity reversed and scaled by
// Bounciness, and the position is clamped hard to the bounds.
func (a *Actor) Step() {
	s := &a.State
	s.Velocity = s.Velocity.Add(s.Acceleration)
	next := s.Position.Add(s.Velocity)

	lo := a.boundsMin
	hi := a.boundsMax.Sub(a.Size)

	if next.X > hi.X || next.X < lo.X {
		s.Velocity.X = -s.Velocity.X * a.Bounciness
	}
	if next.Y > hi.Y || next.Y < lo.Y {
		s.Velocity.Y = -s.Velocity.Y * a.Bounciness
	}

	next.X = geom.ClampAxis(next.X, lo.X, hi.X)
	next.Y = geom.ClampAxis(next.Y, lo.Y, hi.Y)

	s.Position = next
}

// AddVelocity applies an impulse, capping each axis at MaxVelocity.
// There is no lower cap: an impulse never slows a fast actor further
// than the impulse itself does.
func (a *Actor) AddVelocity(impulse geom.Vector) {
	v := a.State.Velocity.Add(impulse)
	a.State.Velocity.X = min(v.X, a.MaxVelocity.X)
	a.State.Velocity.Y = min(v.Y, a.MaxVelocity.Y)
}

// AtNearEdge reports whether the actor has reached the low x bound,
// allowing for fudge units of slack.
func (a *Actor) AtNearEdge(fudge float64) bool {
	return a.State.Position.X <= a.boundsMin.X+fudge
}
