package platform

import "time"

// WindowID identifies a window in events and handles. Backends assign ids
// starting at 1; 0 means no window.
type WindowID uint64

// WindowHandle identifies a native window created by a backend. ID is the
// backend-assigned identifier carried in events; Raw holds the native handle
// value (HWND, X11 window, NSWindow pointer) for the backend's own use.
type WindowHandle struct {
	ID  WindowID
	Raw uintptr
}

// Point is a position in screen pixel coordinates.
type Point struct {
	X, Y int32
}

// WindowParams describes the window a backend should create.
type WindowParams struct {
	Title  string
	Width  uint32
	Height uint32

	// Position is the initial top-left corner. When nil the system
	// chooses the placement.
	Position *Point

	Resizable   bool
	Decorations bool
	AlwaysOnTop bool
	Transparent bool
	Fullscreen  bool
}

// DefaultWindowParams returns the parameters for a standard 800x600
// resizable decorated window.
func DefaultWindowParams() WindowParams {
	return WindowParams{
		Title:       "RX Window",
		Width:       800,
		Height:      600,
		Resizable:   true,
		Decorations: true,
	}
}

// Backend is the contract every platform implementation satisfies. All
// methods must be called from the goroutine that drives the event loop,
// except where an implementation documents otherwise.
type Backend interface {
	// Initialize prepares the backend. It must be called once before any
	// other method.
	Initialize() error

	// CreateWindow creates a native window.
	CreateWindow(params WindowParams) (WindowHandle, error)

	// DestroyWindow destroys a native window.
	DestroyWindow(handle WindowHandle) error

	// ShowWindow makes a window visible.
	ShowWindow(handle WindowHandle) error

	// HideWindow hides a window without destroying it.
	HideWindow(handle WindowHandle) error

	// SetWindowTitle changes a window's title.
	SetWindowTitle(handle WindowHandle, title string) error

	// SetWindowSize resizes a window's client area.
	SetWindowSize(handle WindowHandle, width, height uint32) error

	// WindowSize returns a window's current client size.
	WindowSize(handle WindowHandle) (width, height uint32, err error)

	// SetWindowPosition moves a window.
	SetWindowPosition(handle WindowHandle, x, y int32) error

	// WindowPosition returns a window's current position.
	WindowPosition(handle WindowHandle) (x, y int32, err error)

	// PollEvents returns all pending events without blocking.
	PollEvents() ([]Event, error)

	// WaitEvents blocks until at least one event arrives, then returns it
	// together with everything else already pending.
	WaitEvents() ([]Event, error)

	// WaitEventsTimeout is WaitEvents with an upper bound on the wait.
	// A non-positive timeout blocks indefinitely. The returned slice is
	// empty when the timeout expires with nothing pending.
	WaitEventsTimeout(timeout time.Duration) ([]Event, error)

	// DrawingContext returns the drawing surface for a window.
	DrawingContext(handle WindowHandle) (DrawingContext, error)

	// Cleanup releases all platform resources. Windows still alive are
	// destroyed.
	Cleanup() error
}

// RGBA is a color in normalized 0..1 components, the form drawing surfaces
// consume.
type RGBA struct {
	R, G, B, A float32
}

// DrawingContext is the minimal drawing surface a backend exposes for a
// window. Rendering fidelity is up to the backend; implementations may be
// no-ops.
type DrawingContext interface {
	// Clear fills the whole surface with a color.
	Clear(color RGBA) error

	// FillRect draws a filled rectangle.
	FillRect(x, y, width, height float32, color RGBA) error

	// StrokeRect draws a rectangle outline.
	StrokeRect(x, y, width, height float32, color RGBA, lineWidth float32) error

	// DrawText draws a text run with its baseline origin at x, y.
	DrawText(text string, x, y float32, color RGBA) error

	// Present flushes pending drawing operations to the screen.
	Present() error

	// Size returns the surface size in pixels.
	Size() (width, height uint32)
}
