package rx

import "github.com/emiliancristea/RX-Framework/platform"

// Re-exports from the platform package so most applications only import rx.
type (
	// WindowID identifies a window in events and handles.
	WindowID = platform.WindowID

	// Key identifies a keyboard key.
	Key = platform.Key

	// Modifiers is the set of modifier keys held during an event.
	Modifiers = platform.Modifiers

	// MouseButton identifies a mouse button.
	MouseButton = platform.MouseButton
)

const (
	MouseButtonLeft   = platform.MouseButtonLeft
	MouseButtonRight  = platform.MouseButtonRight
	MouseButtonMiddle = platform.MouseButtonMiddle

	ModShift = platform.ModShift
	ModCtrl  = platform.ModCtrl
	ModAlt   = platform.ModAlt
	ModMeta  = platform.ModMeta
)

// Key constants re-exported from the platform package so applications can
// match on keys without importing it.
const (
	KeyNone = platform.KeyNone

	KeyA = platform.KeyA
	KeyB = platform.KeyB
	KeyC = platform.KeyC
	KeyD = platform.KeyD
	KeyE = platform.KeyE
	KeyF = platform.KeyF
	KeyG = platform.KeyG
	KeyH = platform.KeyH
	KeyI = platform.KeyI
	KeyJ = platform.KeyJ
	KeyK = platform.KeyK
	KeyL = platform.KeyL
	KeyM = platform.KeyM
	KeyN = platform.KeyN
	KeyO = platform.KeyO
	KeyP = platform.KeyP
	KeyQ = platform.KeyQ
	KeyR = platform.KeyR
	KeyS = platform.KeyS
	KeyT = platform.KeyT
	KeyU = platform.KeyU
	KeyV = platform.KeyV
	KeyW = platform.KeyW
	KeyX = platform.KeyX
	KeyY = platform.KeyY
	KeyZ = platform.KeyZ

	Key0 = platform.Key0
	Key1 = platform.Key1
	Key2 = platform.Key2
	Key3 = platform.Key3
	Key4 = platform.Key4
	Key5 = platform.Key5
	Key6 = platform.Key6
	Key7 = platform.Key7
	Key8 = platform.Key8
	Key9 = platform.Key9

	KeyF1  = platform.KeyF1
	KeyF2  = platform.KeyF2
	KeyF3  = platform.KeyF3
	KeyF4  = platform.KeyF4
	KeyF5  = platform.KeyF5
	KeyF6  = platform.KeyF6
	KeyF7  = platform.KeyF7
	KeyF8  = platform.KeyF8
	KeyF9  = platform.KeyF9
	KeyF10 = platform.KeyF10
	KeyF11 = platform.KeyF11
	KeyF12 = platform.KeyF12

	KeyEscape    = platform.KeyEscape
	KeyTab       = platform.KeyTab
	KeySpace     = platform.KeySpace
	KeyReturn    = platform.KeyReturn
	KeyBackspace = platform.KeyBackspace
	KeyDelete    = platform.KeyDelete
	KeyInsert    = platform.KeyInsert
	KeyHome      = platform.KeyHome
	KeyEnd       = platform.KeyEnd
	KeyPageUp    = platform.KeyPageUp
	KeyPageDown  = platform.KeyPageDown

	KeyLeft  = platform.KeyLeft
	KeyRight = platform.KeyRight
	KeyUp    = platform.KeyUp
	KeyDown  = platform.KeyDown

	KeyLeftShift  = platform.KeyLeftShift
	KeyRightShift = platform.KeyRightShift
	KeyLeftCtrl   = platform.KeyLeftCtrl
	KeyRightCtrl  = platform.KeyRightCtrl
	KeyLeftAlt    = platform.KeyLeftAlt
	KeyRightAlt   = platform.KeyRightAlt
	KeyLeftMeta   = platform.KeyLeftMeta
	KeyRightMeta  = platform.KeyRightMeta
)

// ============================================================================
// Framework Events
// ============================================================================

// Event is a single framework event, produced by normalizing raw platform
// events. It is a closed union: the only implementations are the event
// types in this package. Events are immutable values; handlers signal
// consumption through their return value, never by mutating the event.
type Event interface {
	isEvent()
}

// QuitEvent requests application shutdown.
type QuitEvent struct{}

// WindowClosedEvent reports that a window was closed.
type WindowClosedEvent struct {
	Window WindowID
}

// WindowResizedEvent reports a window's new client size.
type WindowResizedEvent struct {
	Window WindowID
	Width  uint32
	Height uint32
}

// WindowMovedEvent reports a window's new position.
type WindowMovedEvent struct {
	Window WindowID
	X, Y   int32
}

// WindowFocusedEvent reports that a window gained keyboard focus.
type WindowFocusedEvent struct {
	Window WindowID
}

// WindowUnfocusedEvent reports that a window lost keyboard focus.
type WindowUnfocusedEvent struct {
	Window WindowID
}

// MousePressedEvent reports a mouse button press at X, Y in window
// coordinates.
type MousePressedEvent struct {
	Window WindowID
	Button MouseButton
	X, Y   float64
}

// MouseReleasedEvent reports a mouse button release.
type MouseReleasedEvent struct {
	Window WindowID
	Button MouseButton
	X, Y   float64
}

// MouseMovedEvent reports the pointer at X, Y in window coordinates.
type MouseMovedEvent struct {
	Window WindowID
	X, Y   float64
}

// MouseEnteredEvent reports the pointer entering a window. It is
// synthesized during normalization; platforms do not report it directly.
type MouseEnteredEvent struct {
	Window WindowID
}

// MouseLeftEvent reports the pointer leaving a window. It is synthesized
// during normalization; platforms do not report it directly.
type MouseLeftEvent struct {
	Window WindowID
}

// MouseWheelEvent reports scroll deltas in lines.
type MouseWheelEvent struct {
	Window WindowID
	DeltaX float64
	DeltaY float64
}

// KeyPressedEvent reports a key press. Repeat is true when the key was
// already down, which platforms report as another press.
type KeyPressedEvent struct {
	Window WindowID
	Key    Key
	Mods   Modifiers
	Repeat bool
}

// KeyReleasedEvent reports a key release.
type KeyReleasedEvent struct {
	Window WindowID
	Key    Key
	Mods   Modifiers
}

// TextInputEvent carries committed text.
type TextInputEvent struct {
	Window WindowID
	Text   string
}

// UserEvent is an application-defined event posted through
// EventLoop.PostUserEvent.
type UserEvent struct {
	Type string
	Data UserData
}

func (QuitEvent) isEvent()            {}
func (WindowClosedEvent) isEvent()    {}
func (WindowResizedEvent) isEvent()   {}
func (WindowMovedEvent) isEvent()     {}
func (WindowFocusedEvent) isEvent()   {}
func (WindowUnfocusedEvent) isEvent() {}
func (MousePressedEvent) isEvent()    {}
func (MouseReleasedEvent) isEvent()   {}
func (MouseMovedEvent) isEvent()      {}
func (MouseEnteredEvent) isEvent()    {}
func (MouseLeftEvent) isEvent()       {}
func (MouseWheelEvent) isEvent()      {}
func (KeyPressedEvent) isEvent()      {}
func (KeyReleasedEvent) isEvent()     {}
func (TextInputEvent) isEvent()       {}
func (UserEvent) isEvent()            {}

// ============================================================================
// User Event Data
// ============================================================================

// UserData is the payload of a UserEvent. It is a closed union of None,
// String, Number, Bool and Map.
type UserData interface {
	isUserData()
}

// UserNone is the empty payload.
type UserNone struct{}

// UserString is a string payload.
type UserString string

// UserNumber is a numeric payload.
type UserNumber float64

// UserBool is a boolean payload.
type UserBool bool

// UserMap is a string map payload.
type UserMap map[string]string

func (UserNone) isUserData()   {}
func (UserString) isUserData() {}
func (UserNumber) isUserData() {}
func (UserBool) isUserData()   {}
func (UserMap) isUserData()    {}
