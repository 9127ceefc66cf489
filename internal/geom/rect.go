package geom

// Rectangle is an axis-aligned box anchored at Origin with extent Size.
type Rectangle struct {
	Origin Vector
	Size   Vector
}

// NewRectangle creates a rectangle from its origin and size.
func NewRectangle(origin, size Vector) Rectangle {
	return Rectangle{Origin: origin, Size: size}
}

// X1 returns the near x edge.
func (r Rectangle) X1() float64 { return r.Origin.X }

// Y1 returns the near y edge.
func (r Rectangle) Y1() float64 { return r.Origin.Y }

// X2 returns the far x edge.
func (r Rectangle) X2() float64 { return r.Origin.X + r.Size.X }

// Y2 returns the far y edge.
func (r Rectangle) Y2() float64 { return r.Origin.Y + r.Size.Y }

// Corners returns the four corners: (x1,y1), (x2,y1), (x1,y2), (x2,y2).
func (r Rectangle) Corners() [4]Vector {
	return [4]Vector{
		{X: r.X1(), Y: r.Y1()},
		{X: r.X2(), Y: r.Y1()},
		{X: r.X1(), Y: r.Y2()},
		{X: r.X2(), Y: r.Y2()},
	}
}

// ContainsPoint reports whether p lies within the closed box on both axes.
func (r Rectangle) ContainsPoint(p Vector) bool {
	return p.X >= r.X1() && p.X <= r.X2() && p.Y >= r.Y1() && p.Y <= r.Y2()
}

// Contains reports whether any corner of other lies inside r.
//
// This is a corner test, not an overlap test: when other is larger than r
// and encloses it without any of its corners falling inside r, the result
// is false. Collision detection depends on exactly this behavior.
func (r Rectangle) Contains(other Rectangle) bool {
	for _, c := range other.Corners() {
		if r.ContainsPoint(c) {
			return true
		}
	}
	return false
}
