package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"non-overlapping vertical", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"sprite left of screen", NewRect(0, 0, 80, 24), NewRect(-6, 3, 5, 2), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	screen := NewRect(0, 0, 80, 24)

	got := screen.Intersect(NewRect(-3, 20, 6, 10))
	expected := NewRect(0, 20, 3, 4)
	if got != expected {
		t.Errorf("Intersect() = %+v, expected %+v", got, expected)
	}

	if got := screen.Intersect(NewRect(90, 0, 5, 5)); !got.Empty() {
		t.Errorf("Intersect() of disjoint rects = %+v, expected empty", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if r.Empty() {
		t.Error("Empty() = true, expected false")
	}
	if !NewRect(0, 0, 0, 3).Empty() {
		t.Error("zero-width rect should be empty")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionBoost) {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionBoost)
	if !f.Has(ActionBoost) || f.Has(ActionConfirm) {
		t.Errorf("Has() after Set(Boost) = %v", f.Actions)
	}

	f.Clear()
	if !f.Empty() {
		t.Errorf("Clear() left %v", f.Actions)
	}
}

func TestActionString(t *testing.T) {
	if ActionBoost.String() != "Boost" {
		t.Errorf("ActionBoost.String() = %q, expected Boost", ActionBoost.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected Unknown", Action(99).String())
	}
}
