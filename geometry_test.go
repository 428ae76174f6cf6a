package rx

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := NewPoint(3, 4)
	if got := p.Add(NewPoint(1, 2)); got != NewPoint(4, 6) {
		t.Errorf("Add = %v, want (4, 6)", got)
	}
	if got := p.Sub(NewPoint(1, 2)); got != NewPoint(2, 2) {
		t.Errorf("Sub = %v, want (2, 2)", got)
	}
	if got := p.Scale(2); got != NewPoint(6, 8) {
		t.Errorf("Scale = %v, want (6, 8)", got)
	}
	if got := NewPoint(0, 0).DistanceTo(p); got != 5 {
		t.Errorf("DistanceTo = %v, want 5", got)
	}
}

func TestSize(t *testing.T) {
	s := NewSize(4, 3)
	if s.Area() != 12 {
		t.Errorf("Area = %v, want 12", s.Area())
	}
	if s.Empty() {
		t.Error("Empty = true for 4x3")
	}
	if !NewSize(0, 5).Empty() || !NewSize(5, -1).Empty() {
		t.Error("Empty = false for degenerate sizes")
	}
	if got := s.Scale(2); got != NewSize(8, 6) {
		t.Errorf("Scale = %v, want 8x6", got)
	}
	if SquareSize(7) != NewSize(7, 7) {
		t.Error("SquareSize(7) != 7x7")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"inside", NewPoint(15, 25), true},
		{"top-left corner", NewPoint(10, 20), true},
		{"right edge excluded", NewPoint(40, 25), false},
		{"bottom edge excluded", NewPoint(15, 60), false},
		{"left of rect", NewPoint(9, 25), false},
		{"just inside bottom-right", NewPoint(39.9, 59.9), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("Right, Bottom = %v, %v, want 40, 60", r.Right(), r.Bottom())
	}
	if got := r.Center(); got != NewPoint(25, 40) {
		t.Errorf("Center = %v, want (25, 40)", got)
	}
	if got := r.Position(); got != NewPoint(10, 20) {
		t.Errorf("Position = %v, want (10, 20)", got)
	}
	if got := r.Size(); got != NewSize(30, 40) {
		t.Errorf("Size = %v, want 30x40", got)
	}
}

func TestRectIntersection(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	if !a.Intersects(b) || !b.Intersects(a) {
		t.Error("overlapping rects reported no intersection")
	}
	got, ok := a.Intersection(b)
	if !ok || got != NewRect(5, 5, 5, 5) {
		t.Errorf("Intersection = %v, %v, want (5, 5, 5, 5), true", got, ok)
	}

	c := NewRect(20, 20, 5, 5)
	if a.Intersects(c) {
		t.Error("disjoint rects reported an intersection")
	}
	if _, ok := a.Intersection(c); ok {
		t.Error("Intersection of disjoint rects reported ok")
	}

	// Rects sharing only an edge do not intersect.
	d := NewRect(10, 0, 5, 10)
	if a.Intersects(d) {
		t.Error("edge-adjacent rects reported an intersection")
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 10, 10)
	if got := a.Union(b); got != NewRect(0, 0, 30, 15) {
		t.Errorf("Union = %v, want (0, 0, 30, 15)", got)
	}
}

func TestRectExpandContract(t *testing.T) {
	r := NewRect(10, 10, 20, 20)
	if got := r.Expand(5); got != NewRect(5, 5, 30, 30) {
		t.Errorf("Expand(5) = %v, want (5, 5, 30, 30)", got)
	}
	if got := r.Contract(5); got != NewRect(15, 15, 10, 10) {
		t.Errorf("Contract(5) = %v, want (15, 15, 10, 10)", got)
	}
}

func TestRectFrom(t *testing.T) {
	r := RectFrom(NewPoint(1, 2), NewSize(3, 4))
	if r != NewRect(1, 2, 3, 4) {
		t.Errorf("RectFrom = %v, want (1, 2, 3, 4)", r)
	}
	if r.Empty() {
		t.Error("Empty = true for a 3x4 rect")
	}
	if !NewRect(0, 0, 0, 5).Empty() {
		t.Error("Empty = false for zero width")
	}
}
