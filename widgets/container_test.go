package widgets

import (
	"testing"

	rx "github.com/emiliancristea/RX-Framework"
)

func TestPaddingHelpers(t *testing.T) {
	u := PaddingUniform(5)
	if u.Left != 5 || u.Top != 5 || u.Right != 5 || u.Bottom != 5 {
		t.Errorf("PaddingUniform(5) = %+v", u)
	}
	if u.Horizontal() != 10 || u.Vertical() != 10 {
		t.Errorf("Horizontal() = %v, Vertical() = %v, want 10, 10", u.Horizontal(), u.Vertical())
	}

	s := PaddingSymmetric(4, 6)
	if s.Left != 4 || s.Right != 4 || s.Top != 6 || s.Bottom != 6 {
		t.Errorf("PaddingSymmetric(4, 6) = %+v", s)
	}
}

func TestContainerContentArea(t *testing.T) {
	c := NewContainer(1).
		WithPadding(PaddingUniform(5)).
		WithBounds(rx.NewRect(10, 20, 100, 50))

	area := c.ContentArea()
	want := rx.NewRect(15, 25, 90, 40)
	if area != want {
		t.Errorf("ContentArea() = %v, want %v", area, want)
	}

	// Padding larger than the bounds clamps to an empty area.
	c.SetPadding(PaddingUniform(100))
	area = c.ContentArea()
	if area.Width != 0 || area.Height != 0 {
		t.Errorf("oversized padding left a %vx%v area", area.Width, area.Height)
	}
}

func TestContainerLayoutHorizontal(t *testing.T) {
	c := NewContainer(1).
		WithLayout(LayoutHorizontal).
		WithSpacing(10).
		WithBounds(rx.NewRect(0, 0, 300, 100))

	first := newStub(1, rx.Rect{})
	first.preferred = rx.NewSize(50, 20)
	second := newStub(2, rx.Rect{})
	second.preferred = rx.NewSize(70, 30)
	c.AddChild(first)
	c.AddChild(second)

	if got, want := first.Bounds(), rx.NewRect(0, 0, 50, 20); got != want {
		t.Errorf("first bounds = %v, want %v", got, want)
	}
	if got, want := second.Bounds(), rx.NewRect(60, 0, 70, 30); got != want {
		t.Errorf("second bounds = %v, want %v", got, want)
	}
}

func TestContainerLayoutVertical(t *testing.T) {
	c := NewContainer(1).
		WithLayout(LayoutVertical).
		WithSpacing(5).
		WithBounds(rx.NewRect(10, 10, 100, 200))

	first := newStub(1, rx.Rect{})
	first.preferred = rx.NewSize(40, 30)
	second := newStub(2, rx.Rect{})
	second.preferred = rx.NewSize(60, 50)
	c.AddChild(first)
	c.AddChild(second)

	if got, want := first.Bounds(), rx.NewRect(10, 10, 40, 30); got != want {
		t.Errorf("first bounds = %v, want %v", got, want)
	}
	if got, want := second.Bounds(), rx.NewRect(10, 45, 60, 50); got != want {
		t.Errorf("second bounds = %v, want %v", got, want)
	}
}

func TestContainerAlignment(t *testing.T) {
	child := newStub(1, rx.Rect{})
	child.preferred = rx.NewSize(50, 20)

	tests := []struct {
		name       string
		alignment  Alignment
		wantY      float32
		wantHeight float32
	}{
		{"start", AlignStart, 0, 20},
		{"center", AlignCenter, 40, 20},
		{"end", AlignEnd, 80, 20},
		{"stretch", AlignStretch, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContainer(10).
				WithLayout(LayoutHorizontal).
				WithBounds(rx.NewRect(0, 0, 300, 100))
			c.SetAlignment(tt.alignment)
			c.AddChild(child)

			got := child.Bounds()
			if !approx(got.Y, tt.wantY) || !approx(got.Height, tt.wantHeight) {
				t.Errorf("bounds = %v, want y %v height %v", got, tt.wantY, tt.wantHeight)
			}
		})
	}
}

func TestContainerLayoutScaleDown(t *testing.T) {
	c := NewContainer(1).
		WithLayout(LayoutHorizontal).
		WithBounds(rx.NewRect(0, 0, 100, 50))

	first := newStub(1, rx.Rect{})
	first.preferred = rx.NewSize(80, 20)
	second := newStub(2, rx.Rect{})
	second.preferred = rx.NewSize(80, 20)
	c.AddChild(first)
	c.AddChild(second)

	// 160 preferred into 100 available scales every child by 0.625.
	if got := first.Bounds(); !approx(got.X, 0) || !approx(got.Width, 50) {
		t.Errorf("first bounds = %v, want x 0 width 50", got)
	}
	if got := second.Bounds(); !approx(got.X, 50) || !approx(got.Width, 50) {
		t.Errorf("second bounds = %v, want x 50 width 50", got)
	}
}

func TestContainerCrossAxisCapped(t *testing.T) {
	c := NewContainer(1).
		WithLayout(LayoutHorizontal).
		WithBounds(rx.NewRect(0, 0, 300, 100))

	child := newStub(1, rx.Rect{})
	child.preferred = rx.NewSize(50, 400)
	c.AddChild(child)

	if got := child.Bounds().Height; !approx(got, 100) {
		t.Errorf("child height = %v, want capped at 100", got)
	}
}

func TestContainerPreferredSize(t *testing.T) {
	c := NewContainer(1).
		WithLayout(LayoutHorizontal).
		WithSpacing(10).
		WithPadding(PaddingUniform(5))

	if got := NewContainer(2).PreferredSize(); got != rx.NewSize(100, 100) {
		t.Errorf("empty container PreferredSize() = %v, want 100x100", got)
	}

	first := newStub(1, rx.Rect{})
	first.preferred = rx.NewSize(50, 20)
	second := newStub(2, rx.Rect{})
	second.preferred = rx.NewSize(70, 30)
	c.AddChild(first)
	c.AddChild(second)

	// 50 + 70 + spacing 10 + padding 10 wide, 30 + padding 10 tall.
	got := c.PreferredSize()
	if !approx(got.Width, 140) || !approx(got.Height, 40) {
		t.Errorf("PreferredSize() = %v, want 140x40", got)
	}

	c.SetLayoutDirection(LayoutVertical)
	got = c.PreferredSize()
	if !approx(got.Width, 80) || !approx(got.Height, 70) {
		t.Errorf("vertical PreferredSize() = %v, want 80x70", got)
	}
}

func TestContainerReverseRouting(t *testing.T) {
	var order []ID
	c := NewContainer(1).WithBounds(rx.NewRect(0, 0, 200, 200))
	bottom := newStub(2, rx.NewRect(0, 0, 100, 100))
	top := newStub(3, rx.NewRect(0, 0, 100, 100))
	bottom.order = &order
	top.order = &order
	c.AddChild(bottom)
	c.AddChild(top)

	consumed, err := c.HandleEvent(keyPress(rx.KeyEscape, 0))
	if err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if consumed {
		t.Error("no child consumes, expected false")
	}
	if len(order) != 2 || order[0] != 3 || order[1] != 2 {
		t.Errorf("routing order = %v, want [3 2]", order)
	}

	order = nil
	top.consume = true
	consumed, err = c.HandleEvent(keyPress(rx.KeyEscape, 0))
	if err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if !consumed {
		t.Error("expected the container to report consumption")
	}
	if len(order) != 1 || order[0] != 3 {
		t.Errorf("routing order = %v, want [3]", order)
	}
}

func TestContainerDisabledIgnoresEvents(t *testing.T) {
	c := NewContainer(1).WithBounds(rx.NewRect(0, 0, 200, 200))
	child := newStub(2, rx.NewRect(0, 0, 100, 100))
	child.consume = true
	c.AddChild(child)
	c.SetEnabled(false)

	consumed, err := c.HandleEvent(pressAt(10, 10))
	if err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if consumed {
		t.Error("disabled container must not consume")
	}
	if len(child.events) != 0 {
		t.Errorf("child received %d events through a disabled container", len(child.events))
	}
}

func TestContainerRemoveChildRelayouts(t *testing.T) {
	c := NewContainer(1).
		WithLayout(LayoutHorizontal).
		WithSpacing(10).
		WithBounds(rx.NewRect(0, 0, 300, 100))

	first := newStub(1, rx.Rect{})
	first.preferred = rx.NewSize(50, 20)
	second := newStub(2, rx.Rect{})
	second.preferred = rx.NewSize(70, 30)
	c.AddChild(first)
	c.AddChild(second)

	removed := c.RemoveChild(1)
	if removed == nil {
		t.Fatal("RemoveChild returned nil")
	}
	if c.ChildCount() != 1 {
		t.Fatalf("ChildCount() = %d, want 1", c.ChildCount())
	}
	if got := second.Bounds(); !approx(got.X, 0) {
		t.Errorf("remaining child x = %v, want 0 after relayout", got.X)
	}
}
