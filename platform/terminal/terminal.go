// Package terminal provides a platform backend that renders into the
// controlling terminal through tcell. It exists for remote shells and
// debugging sessions where no display server is reachable: cells stand in
// for pixels, so one drawing unit is one character cell.
//
// The backend manages a single window covering the whole terminal. Key
// releases do not exist at this level; every key press is followed by an
// immediate synthetic release.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/emiliancristea/RX-Framework/platform"
)

// windowID is the id of the one window a terminal can show.
const windowID = platform.WindowID(1)

// Backend is the terminal platform backend.
type Backend struct {
	mu          sync.Mutex
	initialized bool
	cleaned     bool
	screen      tcell.Screen
	hasWindow   bool
	width       uint32
	height      uint32
	ctx         *Context

	// Mouse state of the previous event. tcell reports absolute button
	// masks, so presses and releases come from diffing.
	buttons      tcell.ButtonMask
	lastX, lastY int

	events chan tcell.Event
	quit   chan struct{}
}

// New returns a backend that opens the controlling terminal on Initialize.
func New() *Backend {
	return &Backend{lastX: -1, lastY: -1}
}

// NewWithScreen returns a backend driving the given screen instead of the
// controlling terminal. Tests pass a tcell simulation screen here.
func NewWithScreen(screen tcell.Screen) *Backend {
	b := New()
	b.screen = screen
	return b
}

func (b *Backend) usable() error {
	if !b.initialized {
		return platform.InvalidOperation("terminal backend not initialized")
	}
	if b.cleaned {
		return platform.InvalidOperation("terminal backend already cleaned up")
	}
	return nil
}

func (b *Backend) window(handle platform.WindowHandle) error {
	if err := b.usable(); err != nil {
		return err
	}
	if !b.hasWindow || handle.ID != windowID {
		return platform.WindowError(fmt.Sprintf("no window with id %d", handle.ID))
	}
	return nil
}

// Initialize implements platform.Backend.
func (b *Backend) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cleaned {
		return platform.PlatformInitError("terminal backend already cleaned up")
	}
	if b.initialized {
		return nil
	}
	if b.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return platform.WrapError(platform.ErrPlatformInit, "failed to open terminal", err)
		}
		b.screen = screen
	}
	if err := b.screen.Init(); err != nil {
		return platform.WrapError(platform.ErrPlatformInit, "failed to initialize terminal", err)
	}
	b.screen.SetStyle(tcell.StyleDefault)
	b.screen.EnableMouse()
	b.events = make(chan tcell.Event, 64)
	b.quit = make(chan struct{})
	go b.screen.ChannelEvents(b.events, b.quit)
	b.initialized = true
	return nil
}

// CreateWindow implements platform.Backend. The window always spans the
// whole terminal; the requested size and position are ignored.
func (b *Backend) CreateWindow(params platform.WindowParams) (platform.WindowHandle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.usable(); err != nil {
		return platform.WindowHandle{}, err
	}
	if b.hasWindow {
		return platform.WindowHandle{}, platform.WindowError("terminal backend supports a single window")
	}
	w, h := b.screen.Size()
	b.hasWindow = true
	b.width, b.height = uint32(w), uint32(h)
	b.ctx = newContext(b)
	b.screen.SetTitle(params.Title)
	return platform.WindowHandle{ID: windowID, Raw: uintptr(windowID)}, nil
}

// DestroyWindow implements platform.Backend.
func (b *Backend) DestroyWindow(handle platform.WindowHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.window(handle); err != nil {
		return err
	}
	b.hasWindow = false
	b.ctx = nil
	b.screen.Clear()
	b.screen.Show()
	return nil
}

// ShowWindow implements platform.Backend. The terminal is always visible.
func (b *Backend) ShowWindow(handle platform.WindowHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.window(handle)
}

// HideWindow implements platform.Backend. The terminal cannot hide.
func (b *Backend) HideWindow(handle platform.WindowHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.window(handle)
}

// SetWindowTitle implements platform.Backend. Emulators that honor the
// title escape update their tab or title bar.
func (b *Backend) SetWindowTitle(handle platform.WindowHandle, title string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.window(handle); err != nil {
		return err
	}
	b.screen.SetTitle(title)
	return nil
}

// SetWindowSize implements platform.Backend. The emulator owns the
// terminal size.
func (b *Backend) SetWindowSize(handle platform.WindowHandle, width, height uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.window(handle); err != nil {
		return err
	}
	return platform.InvalidOperation("terminal size is controlled by the emulator")
}

// WindowSize implements platform.Backend. The size is in character cells.
func (b *Backend) WindowSize(handle platform.WindowHandle) (uint32, uint32, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.window(handle); err != nil {
		return 0, 0, err
	}
	w, h := b.screen.Size()
	b.width, b.height = uint32(w), uint32(h)
	return b.width, b.height, nil
}

// SetWindowPosition implements platform.Backend. Terminals have no
// position.
func (b *Backend) SetWindowPosition(handle platform.WindowHandle, x, y int32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.window(handle); err != nil {
		return err
	}
	return platform.InvalidOperation("terminal windows cannot be moved")
}

// WindowPosition implements platform.Backend.
func (b *Backend) WindowPosition(handle platform.WindowHandle) (int32, int32, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.window(handle); err != nil {
		return 0, 0, err
	}
	return 0, 0, nil
}

// DrawingContext implements platform.Backend.
func (b *Backend) DrawingContext(handle platform.WindowHandle) (platform.DrawingContext, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.window(handle); err != nil {
		return nil, err
	}
	return b.ctx, nil
}

// Cleanup implements platform.Backend. It restores the terminal state.
func (b *Backend) Cleanup() error {
	b.mu.Lock()
	if b.cleaned {
		b.mu.Unlock()
		return nil
	}
	b.cleaned = true
	screen := b.screen
	quit := b.quit
	initialized := b.initialized
	b.hasWindow = false
	b.ctx = nil
	b.mu.Unlock()

	if quit != nil {
		close(quit)
	}
	if initialized && screen != nil {
		screen.Fini()
	}
	return nil
}
