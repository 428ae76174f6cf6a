package widgets

import (
	"errors"
	"math"
	"testing"

	rx "github.com/emiliancristea/RX-Framework"
)

// stubWidget records the events and focus changes it receives. A nil
// order log or zero preferred size falls back to the base behavior.
type stubWidget struct {
	BaseWidget
	consume   bool
	err       error
	preferred rx.Size
	events    []rx.Event
	focusLog  []bool
	order     *[]ID
}

func newStub(id ID, bounds rx.Rect) *stubWidget {
	s := &stubWidget{BaseWidget: NewBaseWidget(id)}
	s.SetBounds(bounds)
	return s
}

func (s *stubWidget) HandleEvent(event rx.Event) (bool, error) {
	s.events = append(s.events, event)
	if s.order != nil {
		*s.order = append(*s.order, s.ID())
	}
	if s.err != nil {
		return false, s.err
	}
	return s.consume, nil
}

func (s *stubWidget) SetFocused(focused bool) {
	s.BaseWidget.SetFocused(focused)
	s.focusLog = append(s.focusLog, focused)
}

func (s *stubWidget) PreferredSize() rx.Size {
	if s.preferred.Width != 0 || s.preferred.Height != 0 {
		return s.preferred
	}
	return s.BaseWidget.PreferredSize()
}

func pressAt(x, y float64) rx.MousePressedEvent {
	return rx.MousePressedEvent{Window: 1, Button: rx.MouseButtonLeft, X: x, Y: y}
}

func releaseAt(x, y float64) rx.MouseReleasedEvent {
	return rx.MouseReleasedEvent{Window: 1, Button: rx.MouseButtonLeft, X: x, Y: y}
}

func moveTo(x, y float64) rx.MouseMovedEvent {
	return rx.MouseMovedEvent{Window: 1, X: x, Y: y}
}

func keyPress(key rx.Key, mods rx.Modifiers) rx.KeyPressedEvent {
	return rx.KeyPressedEvent{Window: 1, Key: key, Mods: mods}
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestManagerFocusFollowsPress(t *testing.T) {
	m := NewManager()
	left := newStub(1, rx.NewRect(0, 0, 50, 50))
	right := newStub(2, rx.NewRect(100, 0, 50, 50))
	m.Add(left)
	m.Add(right)

	if _, err := m.HandleEvent(pressAt(120, 20)); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if id, ok := m.Focused(); !ok || id != 2 {
		t.Errorf("Focused() = %v, %v, want 2, true", id, ok)
	}
	if id, ok := m.Hovered(); !ok || id != 2 {
		t.Errorf("Hovered() = %v, %v, want 2, true", id, ok)
	}

	// A press over empty space clears focus.
	if _, err := m.HandleEvent(pressAt(75, 20)); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if _, ok := m.Focused(); ok {
		t.Error("expected focus to be cleared by a press over empty space")
	}
	if got := right.focusLog; len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("right focusLog = %v, want [true false]", got)
	}
}

func TestManagerWidgetAt(t *testing.T) {
	m := NewManager()
	bottom := newStub(1, rx.NewRect(0, 0, 100, 100))
	top := newStub(2, rx.NewRect(25, 25, 50, 50))
	m.Add(bottom)
	m.Add(top)

	tests := []struct {
		name   string
		point  rx.Point
		wantID ID
		wantOK bool
	}{
		{"topmost wins where both overlap", rx.NewPoint(50, 50), 2, true},
		{"bottom where only it covers", rx.NewPoint(10, 10), 1, true},
		{"nothing outside", rx.NewPoint(200, 200), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := m.WidgetAt(tt.point)
			if id != tt.wantID || ok != tt.wantOK {
				t.Errorf("WidgetAt(%v) = %v, %v, want %v, %v", tt.point, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}

	top.SetVisible(false)
	if id, _ := m.WidgetAt(rx.NewPoint(50, 50)); id != 1 {
		t.Errorf("WidgetAt with invisible top = %v, want 1", id)
	}
}

func TestManagerConsumptionStopsPropagation(t *testing.T) {
	m := NewManager()
	bottom := newStub(1, rx.NewRect(0, 0, 100, 100))
	top := newStub(2, rx.NewRect(0, 0, 100, 100))
	top.consume = true
	m.Add(bottom)
	m.Add(top)

	consumed, err := m.HandleEvent(keyPress(rx.KeyEscape, 0))
	if err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if !consumed {
		t.Error("expected the event to be consumed")
	}
	if len(top.events) != 1 {
		t.Errorf("top received %d events, want 1", len(top.events))
	}
	if len(bottom.events) != 0 {
		t.Errorf("bottom received %d events, want 0", len(bottom.events))
	}
}

func TestManagerFocusedWidgetFirst(t *testing.T) {
	var order []ID
	m := NewManager()
	bottom := newStub(1, rx.NewRect(0, 0, 100, 100))
	top := newStub(2, rx.NewRect(0, 0, 100, 100))
	bottom.order = &order
	top.order = &order
	m.Add(bottom)
	m.Add(top)
	m.SetFocus(1)

	if _, err := m.HandleEvent(keyPress(rx.KeyA, 0)); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("dispatch order = %v, want [1 2]", order)
	}
}

func TestManagerFocusedErrorStopsDispatch(t *testing.T) {
	wantErr := errors.New("handler broke")
	m := NewManager()
	focused := newStub(1, rx.NewRect(0, 0, 100, 100))
	other := newStub(2, rx.NewRect(0, 0, 100, 100))
	focused.err = wantErr
	m.Add(focused)
	m.Add(other)
	m.SetFocus(1)

	consumed, err := m.HandleEvent(keyPress(rx.KeyA, 0))
	if !errors.Is(err, wantErr) {
		t.Fatalf("HandleEvent error = %v, want %v", err, wantErr)
	}
	if consumed {
		t.Error("expected consumed = false on error")
	}
	if len(other.events) != 0 {
		t.Errorf("other received %d events after the error, want 0", len(other.events))
	}
}

func TestManagerRemoveClearsFocusAndHover(t *testing.T) {
	m := NewManager()
	w := newStub(1, rx.NewRect(0, 0, 50, 50))
	m.Add(w)
	m.SetFocus(1)
	if _, err := m.HandleEvent(moveTo(10, 10)); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}

	removed := m.Remove(1)
	if removed == nil {
		t.Fatal("Remove returned nil")
	}
	if _, ok := m.Focused(); ok {
		t.Error("expected no focused widget after Remove")
	}
	if _, ok := m.Hovered(); ok {
		t.Error("expected no hovered widget after Remove")
	}
	if got := w.focusLog; len(got) != 2 || got[1] != false {
		t.Errorf("focusLog = %v, want a final false notification", got)
	}
}

func TestManagerSetFocusNotifies(t *testing.T) {
	m := NewManager()
	first := newStub(1, rx.NewRect(0, 0, 50, 50))
	second := newStub(2, rx.NewRect(60, 0, 50, 50))
	m.Add(first)
	m.Add(second)

	m.SetFocus(1)
	m.SetFocus(1) // no-op, must not renotify
	m.SetFocus(2)

	if got := first.focusLog; len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("first focusLog = %v, want [true false]", got)
	}
	if got := second.focusLog; len(got) != 1 || got[0] != true {
		t.Errorf("second focusLog = %v, want [true]", got)
	}
	if !second.IsFocused() || first.IsFocused() {
		t.Error("focus flags do not match SetFocus(2)")
	}
}

func TestManagerIDsNotReused(t *testing.T) {
	m := NewManager()
	a := m.NextID()
	b := m.NextID()
	if a == 0 || b == 0 {
		t.Error("NextID handed out zero, which never names a widget")
	}
	if a == b {
		t.Errorf("NextID returned %v twice", a)
	}
}
