package actor

import "github.com/vovakirdan/seal-arcade/internal/geom"

// Spec holds the per-kind construction parameters.
type Spec struct {
	Size         geom.Vector
	Bounciness   float64
	Acceleration geom.Vector
}

// Default specs for each kind.
var (
	DefaultPlayerSpec = Spec{Size: geom.V(50, 50), Bounciness: 0.2, Acceleration: geom.V(0, -0.005)}
	DefaultFishSpec   = Spec{Size: geom.V(10, 10)}
	DefaultSharkSpec  = Spec{Size: geom.V(40, 20)}
)

// PlayerStart is where the seal begins a run.
var PlayerStart = geom.V(100, 100)

// NewPlayer creates the seal at start.
func NewPlayer(start geom.Vector, spec Spec) *Actor {
	return New(KindPlayer, geom.State{
		Position:     start,
		Acceleration: spec.Acceleration,
	}, spec.Size, spec.Bounciness)
}

// NewFish creates a fish with the given initial state. The Spec's
// acceleration is applied on top of whatever the state carries.
func NewFish(state geom.State, spec Spec) *Actor {
	state.Acceleration = state.Acceleration.Add(spec.Acceleration)
	return New(KindFish, state, spec.Size, spec.Bounciness)
}

// NewShark creates a shark with the given initial state.
func NewShark(state geom.State, spec Spec) *Actor {
	state.Acceleration = state.Acceleration.Add(spec.Acceleration)
	return New(KindShark, state, spec.Size, spec.Bounciness)
}
