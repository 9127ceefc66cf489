// Package geom provides the world-space math used by the simulation:
// 2D vectors, kinematic state and axis-aligned rectangles.
// World coordinates are floating point with the origin at the bottom-left
// and Y growing upward.
package geom

import "strconv"

// Vector is an immutable 2D value.
type Vector struct {
	X, Y float64
}

// V is shorthand for Vector{X: x, Y: y}.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Neg returns the vector pointing the opposite way.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return v.Add(o.Neg())
}

// String formats the vector as "(x,y)".
func (v Vector) String() string {
	return "(" + strconv.FormatFloat(v.X, 'g', -1, 64) + "," + strconv.FormatFloat(v.Y, 'g', -1, 64) + ")"
}

// State is the kinematic state of a single actor.
type State struct {
	Position     Vector
	Velocity     Vector
	Acceleration Vector
}

// ClampAxis restricts val to [lo, hi]. The upper bound is applied first,
// so a degenerate range (hi < lo) resolves to lo.
func ClampAxis(val, lo, hi float64) float64 {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}
