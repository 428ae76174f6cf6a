package rx

import "github.com/emiliancristea/RX-Framework/platform"

// InputTracker derives input state and synthesized events from the raw
// event stream. It is a pure state machine: Apply consumes one raw event
// at a time, in arrival order, and returns the canonical events it
// produces.
//
// The tracker is where the two pieces of information platforms do not
// report are computed: the key-repeat flag (a press of a key that is
// already down) and window boundary crossings (the pointer moving into a
// different window than the one it occupied).
//
// InputTracker is not safe for concurrent use; the event loop guards it.
type InputTracker struct {
	mouse    mouseState
	keyboard keyboardState
}

type mouseState struct {
	x, y    float64
	window  WindowID // 0 until a window reports the pointer
	buttons []MouseButton
}

type keyboardState struct {
	pressed   map[Key]bool
	modifiers Modifiers
}

// NewInputTracker creates a tracker with no pointer window, no pressed
// buttons and no pressed keys.
func NewInputTracker() *InputTracker {
	return &InputTracker{
		keyboard: keyboardState{pressed: make(map[Key]bool)},
	}
}

// Apply runs one raw event through the state machine and returns the
// canonical events it yields, in order. Synthesized MouseLeft and
// MouseEntered events precede the MouseMoved that triggered them. Raw
// events the tracker does not recognize yield nothing.
func (t *InputTracker) Apply(raw platform.Event) []Event {
	switch raw.Type {
	case platform.EventQuit:
		return []Event{QuitEvent{}}

	case platform.EventWindowClosed:
		return []Event{WindowClosedEvent{Window: raw.Window}}

	case platform.EventWindowResized:
		return []Event{WindowResizedEvent{Window: raw.Window, Width: raw.Width, Height: raw.Height}}

	case platform.EventWindowMoved:
		return []Event{WindowMovedEvent{Window: raw.Window, X: int32(raw.X), Y: int32(raw.Y)}}

	case platform.EventWindowFocused:
		return []Event{WindowFocusedEvent{Window: raw.Window}}

	case platform.EventWindowUnfocused:
		return []Event{WindowUnfocusedEvent{Window: raw.Window}}

	case platform.EventMousePressed:
		t.mouse.x, t.mouse.y = raw.X, raw.Y
		t.mouse.window = raw.Window
		if !t.IsMouseButtonPressed(raw.Button) {
			t.mouse.buttons = append(t.mouse.buttons, raw.Button)
		}
		return []Event{MousePressedEvent{Window: raw.Window, Button: raw.Button, X: raw.X, Y: raw.Y}}

	case platform.EventMouseReleased:
		t.mouse.x, t.mouse.y = raw.X, raw.Y
		t.removeButton(raw.Button)
		return []Event{MouseReleasedEvent{Window: raw.Window, Button: raw.Button, X: raw.X, Y: raw.Y}}

	case platform.EventMouseMoved:
		old := t.mouse.window
		t.mouse.x, t.mouse.y = raw.X, raw.Y

		var out []Event
		if old != raw.Window {
			if old != 0 {
				out = append(out, MouseLeftEvent{Window: old})
			}
			out = append(out, MouseEnteredEvent{Window: raw.Window})
			t.mouse.window = raw.Window
		}
		return append(out, MouseMovedEvent{Window: raw.Window, X: raw.X, Y: raw.Y})

	case platform.EventMouseWheel:
		return []Event{MouseWheelEvent{Window: raw.Window, DeltaX: raw.DeltaX, DeltaY: raw.DeltaY}}

	case platform.EventKeyPressed:
		repeat := t.keyboard.pressed[raw.Key]
		t.keyboard.pressed[raw.Key] = true
		t.keyboard.modifiers = raw.Mods
		return []Event{KeyPressedEvent{Window: raw.Window, Key: raw.Key, Mods: raw.Mods, Repeat: repeat}}

	case platform.EventKeyReleased:
		t.keyboard.pressed[raw.Key] = false
		t.keyboard.modifiers = raw.Mods
		return []Event{KeyReleasedEvent{Window: raw.Window, Key: raw.Key, Mods: raw.Mods}}

	case platform.EventTextInput:
		return []Event{TextInputEvent{Window: raw.Window, Text: raw.Text}}
	}
	return nil
}

func (t *InputTracker) removeButton(button MouseButton) {
	for i, b := range t.mouse.buttons {
		if b == button {
			t.mouse.buttons = append(t.mouse.buttons[:i], t.mouse.buttons[i+1:]...)
			return
		}
	}
}

// MousePosition returns the last reported pointer position.
func (t *InputTracker) MousePosition() (x, y float64) {
	return t.mouse.x, t.mouse.y
}

// MouseWindow returns the window currently containing the pointer. The
// second result is false while no window has reported it.
func (t *InputTracker) MouseWindow() (WindowID, bool) {
	return t.mouse.window, t.mouse.window != 0
}

// IsMouseButtonPressed reports whether a mouse button is currently down.
func (t *InputTracker) IsMouseButtonPressed(button MouseButton) bool {
	for _, b := range t.mouse.buttons {
		if b == button {
			return true
		}
	}
	return false
}

// PressedButtons returns the currently held mouse buttons in press order.
func (t *InputTracker) PressedButtons() []MouseButton {
	out := make([]MouseButton, len(t.mouse.buttons))
	copy(out, t.mouse.buttons)
	return out
}

// IsKeyPressed reports whether a key is currently down.
func (t *InputTracker) IsKeyPressed(key Key) bool {
	return t.keyboard.pressed[key]
}

// Modifiers returns the modifier set from the most recent key event.
func (t *InputTracker) Modifiers() Modifiers {
	return t.keyboard.modifiers
}
