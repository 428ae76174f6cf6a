package rx

import (
	"testing"

	"github.com/emiliancristea/RX-Framework/platform"
)

func applyAll(t *InputTracker, raws ...platform.Event) []Event {
	var out []Event
	for _, raw := range raws {
		out = append(out, t.Apply(raw)...)
	}
	return out
}

func TestTrackerKeyRepeat(t *testing.T) {
	tracker := NewInputTracker()

	events := applyAll(tracker,
		platform.KeyPressed(1, KeyA, 0),
		platform.KeyPressed(1, KeyA, 0),
		platform.KeyReleased(1, KeyA, 0),
		platform.KeyPressed(1, KeyA, 0),
	)
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}

	wantRepeat := []bool{false, true, false}
	presses := 0
	for _, ev := range events {
		press, ok := ev.(KeyPressedEvent)
		if !ok {
			continue
		}
		if press.Repeat != wantRepeat[presses] {
			t.Errorf("press %d: Repeat = %v, want %v", presses, press.Repeat, wantRepeat[presses])
		}
		presses++
	}
	if presses != 3 {
		t.Errorf("saw %d presses, want 3", presses)
	}
}

func TestTrackerKeyState(t *testing.T) {
	tracker := NewInputTracker()

	tracker.Apply(platform.KeyPressed(1, KeyLeftShift, ModShift))
	if !tracker.IsKeyPressed(KeyLeftShift) {
		t.Error("IsKeyPressed = false after press")
	}
	if !tracker.Modifiers().Shift() {
		t.Error("Modifiers().Shift() = false after shifted press")
	}

	tracker.Apply(platform.KeyReleased(1, KeyLeftShift, 0))
	if tracker.IsKeyPressed(KeyLeftShift) {
		t.Error("IsKeyPressed = true after release")
	}
	if !tracker.Modifiers().Empty() {
		t.Errorf("Modifiers() = %v after release, want none", tracker.Modifiers())
	}
}

func TestTrackerWindowCrossing(t *testing.T) {
	tracker := NewInputTracker()

	// The first move establishes a window with an enter, no leave.
	events := tracker.Apply(platform.MouseMoved(1, 10, 10))
	if len(events) != 2 {
		t.Fatalf("first move produced %d events, want 2", len(events))
	}
	if _, ok := events[0].(MouseEnteredEvent); !ok {
		t.Errorf("events[0] = %T, want MouseEnteredEvent", events[0])
	}
	if _, ok := events[1].(MouseMovedEvent); !ok {
		t.Errorf("events[1] = %T, want MouseMovedEvent", events[1])
	}

	// Moving within the same window synthesizes nothing.
	events = tracker.Apply(platform.MouseMoved(1, 20, 20))
	if len(events) != 1 {
		t.Fatalf("same-window move produced %d events, want 1", len(events))
	}

	// Crossing into another window leaves the old one first.
	events = tracker.Apply(platform.MouseMoved(2, 5, 5))
	if len(events) != 3 {
		t.Fatalf("crossing move produced %d events, want 3", len(events))
	}
	left, ok := events[0].(MouseLeftEvent)
	if !ok || left.Window != 1 {
		t.Errorf("events[0] = %#v, want MouseLeftEvent{Window: 1}", events[0])
	}
	entered, ok := events[1].(MouseEnteredEvent)
	if !ok || entered.Window != 2 {
		t.Errorf("events[1] = %#v, want MouseEnteredEvent{Window: 2}", events[1])
	}
	moved, ok := events[2].(MouseMovedEvent)
	if !ok || moved.Window != 2 || moved.X != 5 {
		t.Errorf("events[2] = %#v, want MouseMovedEvent{Window: 2, X: 5, Y: 5}", events[2])
	}

	if win, ok := tracker.MouseWindow(); !ok || win != 2 {
		t.Errorf("MouseWindow() = %v, %v, want 2, true", win, ok)
	}
}

func TestTrackerPressDoesNotSynthesizeCrossing(t *testing.T) {
	tracker := NewInputTracker()
	tracker.Apply(platform.MouseMoved(1, 10, 10))

	// A press reporting another window updates state without enter/leave;
	// only moves mark crossings.
	events := tracker.Apply(platform.MousePressed(2, MouseButtonLeft, 3, 4))
	if len(events) != 1 {
		t.Fatalf("press produced %d events, want 1", len(events))
	}
	if _, ok := events[0].(MousePressedEvent); !ok {
		t.Fatalf("events[0] = %T, want MousePressedEvent", events[0])
	}
	if win, _ := tracker.MouseWindow(); win != 2 {
		t.Errorf("MouseWindow() = %v, want 2", win)
	}
	if x, y := tracker.MousePosition(); x != 3 || y != 4 {
		t.Errorf("MousePosition() = %v, %v, want 3, 4", x, y)
	}
}

func TestTrackerButtonState(t *testing.T) {
	tracker := NewInputTracker()

	tracker.Apply(platform.MousePressed(1, MouseButtonLeft, 0, 0))
	tracker.Apply(platform.MousePressed(1, MouseButtonRight, 0, 0))
	// A second press of a held button must not duplicate it.
	tracker.Apply(platform.MousePressed(1, MouseButtonLeft, 0, 0))

	if got := tracker.PressedButtons(); len(got) != 2 {
		t.Fatalf("PressedButtons() = %v, want two entries", got)
	}
	if !tracker.IsMouseButtonPressed(MouseButtonLeft) || !tracker.IsMouseButtonPressed(MouseButtonRight) {
		t.Error("expected left and right to be pressed")
	}

	tracker.Apply(platform.MouseReleased(1, MouseButtonLeft, 0, 0))
	if tracker.IsMouseButtonPressed(MouseButtonLeft) {
		t.Error("left still pressed after release")
	}
	if !tracker.IsMouseButtonPressed(MouseButtonRight) {
		t.Error("right must stay pressed")
	}

	// Releasing a button that was never pressed is a no-op.
	tracker.Apply(platform.MouseReleased(1, MouseButtonMiddle, 0, 0))
	if got := tracker.PressedButtons(); len(got) != 1 || got[0] != MouseButtonRight {
		t.Errorf("PressedButtons() = %v, want [right]", got)
	}
}

func TestTrackerPassThroughEvents(t *testing.T) {
	tracker := NewInputTracker()

	tests := []struct {
		name string
		raw  platform.Event
		want Event
	}{
		{"quit", platform.Quit(), QuitEvent{}},
		{"window closed", platform.WindowClosed(3), WindowClosedEvent{Window: 3}},
		{"window resized", platform.WindowResized(1, 800, 600), WindowResizedEvent{Window: 1, Width: 800, Height: 600}},
		{"window moved", platform.WindowMoved(1, -10, 20), WindowMovedEvent{Window: 1, X: -10, Y: 20}},
		{"window focused", platform.WindowFocused(1), WindowFocusedEvent{Window: 1}},
		{"window unfocused", platform.WindowUnfocused(1), WindowUnfocusedEvent{Window: 1}},
		{"wheel", platform.MouseWheel(1, 0, -3), MouseWheelEvent{Window: 1, DeltaY: -3}},
		{"text", platform.TextInput(1, "é"), TextInputEvent{Window: 1, Text: "é"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := tracker.Apply(tt.raw)
			if len(events) != 1 {
				t.Fatalf("Apply produced %d events, want 1", len(events))
			}
			if events[0] != tt.want {
				t.Errorf("Apply() = %#v, want %#v", events[0], tt.want)
			}
		})
	}
}

func TestTrackerUnknownRawTypeDropped(t *testing.T) {
	tracker := NewInputTracker()
	if events := tracker.Apply(platform.Event{Type: 0}); len(events) != 0 {
		t.Errorf("unknown raw type produced %v", events)
	}
}
