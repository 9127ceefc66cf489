package actor

import "github.com/vovakirdan/seal-arcade/internal/geom"

// Command is an input-driven action applied to the simulation.
type Command interface {
	Execute()
}

// AddSpeedCommand gives Target an impulse.
type AddSpeedCommand struct {
	Target  *Actor
	Impulse geom.Vector
}

// Execute applies the impulse. A nil target is ignored.
func (c AddSpeedCommand) Execute() {
	if c.Target == nil {
		return
	}
	c.Target.AddVelocity(c.Impulse)
}
