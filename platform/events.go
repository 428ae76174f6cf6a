package platform

import "fmt"

// ============================================================================
// Raw Event Types
// ============================================================================

// EventType identifies the kind of raw event a backend reports.
type EventType uint8

const (
	EventQuit EventType = iota + 1
	EventWindowClosed
	EventWindowResized
	EventWindowMoved
	EventWindowFocused
	EventWindowUnfocused
	EventMousePressed
	EventMouseReleased
	EventMouseMoved
	EventMouseWheel
	EventKeyPressed
	EventKeyReleased
	EventTextInput
)

var eventTypeNames = []string{
	EventQuit:            "Quit",
	EventWindowClosed:    "WindowClosed",
	EventWindowResized:   "WindowResized",
	EventWindowMoved:     "WindowMoved",
	EventWindowFocused:   "WindowFocused",
	EventWindowUnfocused: "WindowUnfocused",
	EventMousePressed:    "MousePressed",
	EventMouseReleased:   "MouseReleased",
	EventMouseMoved:      "MouseMoved",
	EventMouseWheel:      "MouseWheel",
	EventKeyPressed:      "KeyPressed",
	EventKeyReleased:     "KeyReleased",
	EventTextInput:       "TextInput",
}

// String returns the event type's name.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) && eventTypeNames[t] != "" {
		return eventTypeNames[t]
	}
	return fmt.Sprintf("EventType(%d)", uint8(t))
}

// Event is one raw platform event. Which fields are meaningful depends on
// Type; the constructors below populate exactly the right ones.
//
// Raw events know nothing about enter/leave transitions or key repeats.
// Those are derived during normalization from the order raw events arrive
// in.
type Event struct {
	Type   EventType
	Window WindowID

	// Mouse fields. X, Y also carry the window position for
	// WindowMoved events.
	Button MouseButton
	X, Y   float64
	DeltaX float64
	DeltaY float64

	// Keyboard fields
	Key  Key
	Mods Modifiers
	Text string

	// Window size for WindowResized events
	Width  uint32
	Height uint32
}

// Quit returns an event requesting application shutdown.
func Quit() Event {
	return Event{Type: EventQuit}
}

// WindowClosed returns an event reporting that a window was closed.
func WindowClosed(win WindowID) Event {
	return Event{Type: EventWindowClosed, Window: win}
}

// WindowResized returns an event reporting a window's new client size.
func WindowResized(win WindowID, width, height uint32) Event {
	return Event{Type: EventWindowResized, Window: win, Width: width, Height: height}
}

// WindowMoved returns an event reporting a window's new position.
func WindowMoved(win WindowID, x, y int32) Event {
	return Event{Type: EventWindowMoved, Window: win, X: float64(x), Y: float64(y)}
}

// WindowFocused returns an event reporting that a window gained focus.
func WindowFocused(win WindowID) Event {
	return Event{Type: EventWindowFocused, Window: win}
}

// WindowUnfocused returns an event reporting that a window lost focus.
func WindowUnfocused(win WindowID) Event {
	return Event{Type: EventWindowUnfocused, Window: win}
}

// MousePressed returns an event reporting a mouse button press at x, y in
// window coordinates.
func MousePressed(win WindowID, button MouseButton, x, y float64) Event {
	return Event{Type: EventMousePressed, Window: win, Button: button, X: x, Y: y}
}

// MouseReleased returns an event reporting a mouse button release.
func MouseReleased(win WindowID, button MouseButton, x, y float64) Event {
	return Event{Type: EventMouseReleased, Window: win, Button: button, X: x, Y: y}
}

// MouseMoved returns an event reporting the pointer at x, y in window
// coordinates.
func MouseMoved(win WindowID, x, y float64) Event {
	return Event{Type: EventMouseMoved, Window: win, X: x, Y: y}
}

// MouseWheel returns an event reporting scroll deltas in lines.
func MouseWheel(win WindowID, deltaX, deltaY float64) Event {
	return Event{Type: EventMouseWheel, Window: win, DeltaX: deltaX, DeltaY: deltaY}
}

// KeyPressed returns an event reporting a key press.
func KeyPressed(win WindowID, key Key, mods Modifiers) Event {
	return Event{Type: EventKeyPressed, Window: win, Key: key, Mods: mods}
}

// KeyReleased returns an event reporting a key release.
func KeyReleased(win WindowID, key Key, mods Modifiers) Event {
	return Event{Type: EventKeyReleased, Window: win, Key: key, Mods: mods}
}

// TextInput returns an event carrying committed text.
func TextInput(win WindowID, text string) Event {
	return Event{Type: EventTextInput, Window: win, Text: text}
}

// String returns a compact description for trace output.
func (e Event) String() string {
	switch e.Type {
	case EventQuit:
		return "Quit"
	case EventWindowClosed, EventWindowFocused, EventWindowUnfocused:
		return fmt.Sprintf("%s{win=%d}", e.Type, e.Window)
	case EventWindowResized:
		return fmt.Sprintf("WindowResized{win=%d %dx%d}", e.Window, e.Width, e.Height)
	case EventWindowMoved:
		return fmt.Sprintf("WindowMoved{win=%d %g,%g}", e.Window, e.X, e.Y)
	case EventMousePressed, EventMouseReleased:
		return fmt.Sprintf("%s{win=%d %s %g,%g}", e.Type, e.Window, e.Button, e.X, e.Y)
	case EventMouseMoved:
		return fmt.Sprintf("MouseMoved{win=%d %g,%g}", e.Window, e.X, e.Y)
	case EventMouseWheel:
		return fmt.Sprintf("MouseWheel{win=%d %g,%g}", e.Window, e.DeltaX, e.DeltaY)
	case EventKeyPressed, EventKeyReleased:
		return fmt.Sprintf("%s{win=%d %s mods=%s}", e.Type, e.Window, e.Key, e.Mods)
	case EventTextInput:
		return fmt.Sprintf("TextInput{win=%d %q}", e.Window, e.Text)
	}
	return e.Type.String()
}
