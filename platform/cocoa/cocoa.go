//go:build darwin

// Package cocoa provides the platform backend for macOS. Windows are
// NSWindows driven through the Objective-C runtime via purego; no cgo is
// involved.
//
// AppKit is main-thread only, so Initialize locks the calling goroutine to
// its OS thread and the backend must be driven from the main goroutine.
// Window delegate callbacks run nested inside sendEvent: and inside window
// calls like SetWindowSize; everything they touch lives behind its own
// lock, separate from the backend mutex.
package cocoa

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/ebitengine/purego/objc"

	"github.com/emiliancristea/RX-Framework/platform"
)

// Backend is the Cocoa platform backend. Only one backend can be active
// per process because the NSApplication and delegate class are shared.
type Backend struct {
	mu          sync.Mutex
	initialized bool
	cleaned     bool
	nextID      platform.WindowID
	windows     map[platform.WindowID]*window
	app         objc.ID
	delegate    objc.ID
}

type window struct {
	nsWindow objc.ID
	ctx      *Context
}

// shared is the state the delegate callbacks read and write. It has its
// own lock because the callbacks run nested inside backend calls that
// hold the backend mutex.
var shared struct {
	mu       sync.Mutex
	active   *Backend
	byWindow map[objc.ID]platform.WindowID
	queue    []platform.Event
}

var appKitOnce sync.Once
var appKitErr error

var delegateOnce sync.Once
var delegateClass objc.Class
var delegateErr error

// New returns an uninitialized Cocoa backend.
func New() *Backend {
	return &Backend{
		nextID:  1,
		windows: make(map[platform.WindowID]*window),
	}
}

func (b *Backend) usable() error {
	if !b.initialized {
		return platform.InvalidOperation("cocoa backend not initialized")
	}
	if b.cleaned {
		return platform.InvalidOperation("cocoa backend already cleaned up")
	}
	return nil
}

func (b *Backend) window(handle platform.WindowHandle) (*window, error) {
	if err := b.usable(); err != nil {
		return nil, err
	}
	w, ok := b.windows[handle.ID]
	if !ok {
		return nil, platform.WindowError(fmt.Sprintf("no window with id %d", handle.ID))
	}
	return w, nil
}

// Initialize implements platform.Backend.
func (b *Backend) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cleaned {
		return platform.PlatformInitError("cocoa backend already cleaned up")
	}
	if b.initialized {
		return nil
	}

	shared.mu.Lock()
	if shared.active != nil && shared.active != b {
		shared.mu.Unlock()
		return platform.PlatformInitError("another cocoa backend is already active")
	}
	shared.active = b
	shared.byWindow = make(map[objc.ID]platform.WindowID)
	shared.queue = nil
	shared.mu.Unlock()

	// AppKit delivers UI events on the main thread; pin the caller.
	runtime.LockOSThread()

	appKitOnce.Do(func() { appKitErr = loadAppKit() })
	if appKitErr != nil {
		return appKitErr
	}
	delegateOnce.Do(func() { delegateClass, delegateErr = registerDelegateClass() })
	if delegateErr != nil {
		return delegateErr
	}

	b.app = objc.ID(classNSApplication).Send(selSharedApplication)
	b.app.Send(selSetActivationPolicy, activationPolicyRegular)
	b.app.Send(selFinishLaunching)
	b.delegate = objc.ID(delegateClass).Send(selAlloc).Send(selInit)

	b.initialized = true
	return nil
}

// CreateWindow implements platform.Backend. The window is created hidden;
// ShowWindow makes it visible.
func (b *Backend) CreateWindow(params platform.WindowParams) (platform.WindowHandle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.usable(); err != nil {
		return platform.WindowHandle{}, err
	}

	style := uint64(styleMaskTitled | styleMaskClosable | styleMaskMiniaturizable)
	if params.Resizable {
		style |= styleMaskResizable
	}
	if !params.Decorations {
		style = styleMaskBorderless
	}

	rect := nsRect{Size: nsSize{Width: float64(params.Width), Height: float64(params.Height)}}
	nsWin := objc.ID(classNSWindow).Send(selAlloc).Send(selInitWithRect,
		rect, style, backingStoreBuffered, false)
	if nsWin == 0 {
		return platform.WindowHandle{}, platform.WindowError("failed to create NSWindow")
	}
	// The backend owns the window lifetime; close must not free the object.
	nsWin.Send(selSetReleasedOnClose, false)
	nsWin.Send(selSetTitle, nsString(params.Title))
	nsWin.Send(selSetDelegate, b.delegate)
	if params.AlwaysOnTop {
		nsWin.Send(selSetLevel, floatingWindowLevel)
	}
	if params.Position != nil {
		// AppKit measures from the bottom left of the screen; the
		// requested position is the top left corner.
		top := nsPoint{X: float64(params.Position.X), Y: screenHeight() - float64(params.Position.Y)}
		nsWin.Send(selSetTopLeftPoint, top)
	}

	id := b.nextID
	b.nextID++
	w := &window{nsWindow: nsWin}
	w.ctx = newContext(b, w)
	b.windows[id] = w

	shared.mu.Lock()
	shared.byWindow[nsWin] = id
	shared.mu.Unlock()

	if params.Fullscreen {
		nsWin.Send(selToggleFullScreen, objc.ID(0))
	}
	return platform.WindowHandle{ID: id, Raw: uintptr(nsWin)}, nil
}

// DestroyWindow implements platform.Backend.
func (b *Backend) DestroyWindow(handle platform.WindowHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.window(handle)
	if err != nil {
		return err
	}
	delete(b.windows, handle.ID)
	shared.mu.Lock()
	delete(shared.byWindow, w.nsWindow)
	shared.mu.Unlock()
	w.nsWindow.Send(selSetDelegate, objc.ID(0))
	w.nsWindow.Send(selClose)
	return nil
}

// ShowWindow implements platform.Backend.
func (b *Backend) ShowWindow(handle platform.WindowHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.window(handle)
	if err != nil {
		return err
	}
	w.nsWindow.Send(selMakeKeyAndFront, objc.ID(0))
	b.app.Send(selActivateIgnoring, true)
	return nil
}

// HideWindow implements platform.Backend.
func (b *Backend) HideWindow(handle platform.WindowHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.window(handle)
	if err != nil {
		return err
	}
	w.nsWindow.Send(selOrderOut, objc.ID(0))
	return nil
}

// SetWindowTitle implements platform.Backend.
func (b *Backend) SetWindowTitle(handle platform.WindowHandle, title string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.window(handle)
	if err != nil {
		return err
	}
	w.nsWindow.Send(selSetTitle, nsString(title))
	return nil
}

// SetWindowSize implements platform.Backend. The size is the content area.
func (b *Backend) SetWindowSize(handle platform.WindowHandle, width, height uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.window(handle)
	if err != nil {
		return err
	}
	w.nsWindow.Send(selSetContentSize, nsSize{Width: float64(width), Height: float64(height)})
	return nil
}

// WindowSize implements platform.Backend.
func (b *Backend) WindowSize(handle platform.WindowHandle) (uint32, uint32, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.window(handle)
	if err != nil {
		return 0, 0, err
	}
	size := w.contentSize()
	return uint32(size.Width), uint32(size.Height), nil
}

// SetWindowPosition implements platform.Backend.
func (b *Backend) SetWindowPosition(handle platform.WindowHandle, x, y int32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.window(handle)
	if err != nil {
		return err
	}
	top := nsPoint{X: float64(x), Y: screenHeight() - float64(y)}
	w.nsWindow.Send(selSetTopLeftPoint, top)
	return nil
}

// WindowPosition implements platform.Backend.
func (b *Backend) WindowPosition(handle platform.WindowHandle) (int32, int32, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.window(handle)
	if err != nil {
		return 0, 0, err
	}
	frame := objc.Send[nsRect](w.nsWindow, selFrame)
	x := int32(frame.Origin.X)
	y := int32(screenHeight() - frame.Origin.Y - frame.Size.Height)
	return x, y, nil
}

// DrawingContext implements platform.Backend.
func (b *Backend) DrawingContext(handle platform.WindowHandle) (platform.DrawingContext, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.window(handle)
	if err != nil {
		return nil, err
	}
	return w.ctx, nil
}

// Cleanup implements platform.Backend.
func (b *Backend) Cleanup() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cleaned {
		return nil
	}
	b.cleaned = true
	for id, w := range b.windows {
		shared.mu.Lock()
		delete(shared.byWindow, w.nsWindow)
		shared.mu.Unlock()
		w.nsWindow.Send(selSetDelegate, objc.ID(0))
		w.nsWindow.Send(selClose)
		delete(b.windows, id)
	}
	shared.mu.Lock()
	if shared.active == b {
		shared.active = nil
		shared.queue = nil
	}
	shared.mu.Unlock()
	return nil
}

// contentSize is the size of the window content area in points.
func (w *window) contentSize() nsSize {
	view := w.nsWindow.Send(selContentView)
	if view == 0 {
		return nsSize{}
	}
	return objc.Send[nsRect](view, selFrame).Size
}
