// Package headless provides an in-memory Backend with no native windowing.
// It drives the event pipeline tests and serves embedding hosts that deliver
// their own input: raw events are injected with Push and consumed through
// the normal Poll/Wait contract.
package headless

import (
	"fmt"
	"sync"
	"time"

	"github.com/emiliancristea/RX-Framework/platform"
)

// Backend is an in-memory platform backend.
type Backend struct {
	mu          sync.Mutex
	initialized bool
	cleaned     bool
	nextID      platform.WindowID
	windows     map[platform.WindowID]*windowState
	pending     []platform.Event
	nextErr     error

	// wake carries one token per Push so WaitEvents can block without
	// holding the mutex.
	wake chan struct{}
}

type windowState struct {
	params  platform.WindowParams
	visible bool
	x, y    int32
	ctx     *Context
}

// New returns an uninitialized headless backend.
func New() *Backend {
	return &Backend{
		nextID:  1,
		windows: make(map[platform.WindowID]*windowState),
		wake:    make(chan struct{}, 1),
	}
}

// Push injects raw events to be returned by the next Poll/Wait call. Safe
// to call from any goroutine.
func (b *Backend) Push(events ...platform.Event) {
	b.mu.Lock()
	b.pending = append(b.pending, events...)
	b.mu.Unlock()
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// FailNext makes the next Poll/Wait call return err instead of events.
func (b *Backend) FailNext(err error) {
	b.mu.Lock()
	b.nextErr = err
	b.mu.Unlock()
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// WindowCount returns the number of live windows.
func (b *Backend) WindowCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.windows)
}

func (b *Backend) usable() error {
	if !b.initialized {
		return platform.InvalidOperation("headless backend not initialized")
	}
	if b.cleaned {
		return platform.InvalidOperation("headless backend already cleaned up")
	}
	return nil
}

func (b *Backend) window(handle platform.WindowHandle) (*windowState, error) {
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
		return platform.PlatformInitError("headless backend already cleaned up")
	}
	b.initialized = true
	return nil
}

// CreateWindow implements platform.Backend.
func (b *Backend) CreateWindow(params platform.WindowParams) (platform.WindowHandle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.usable(); err != nil {
		return platform.WindowHandle{}, err
	}
	id := b.nextID
	b.nextID++
	w := &windowState{
		params: params,
		ctx:    newContext(params.Width, params.Height),
	}
	if params.Position != nil {
		w.x, w.y = params.Position.X, params.Position.Y
	}
	b.windows[id] = w
	return platform.WindowHandle{ID: id, Raw: uintptr(id)}, nil
}

// DestroyWindow implements platform.Backend.
func (b *Backend) DestroyWindow(handle platform.WindowHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := b.window(handle); err != nil {
		return err
	}
	delete(b.windows, handle.ID)
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
	w.visible = true
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
	w.visible = false
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
	w.params.Title = title
	return nil
}

// SetWindowSize implements platform.Backend.
func (b *Backend) SetWindowSize(handle platform.WindowHandle, width, height uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.window(handle)
	if err != nil {
		return err
	}
	w.params.Width, w.params.Height = width, height
	w.ctx.resize(width, height)
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
	return w.params.Width, w.params.Height, nil
}

// SetWindowPosition implements platform.Backend.
func (b *Backend) SetWindowPosition(handle platform.WindowHandle, x, y int32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.window(handle)
	if err != nil {
		return err
	}
	w.x, w.y = x, y
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
	return w.x, w.y, nil
}

// PollEvents implements platform.Backend.
func (b *Backend) PollEvents() ([]platform.Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.usable(); err != nil {
		return nil, err
	}
	return b.takeLocked()
}

// takeLocked hands out the pending error or the pending events.
func (b *Backend) takeLocked() ([]platform.Event, error) {
	if err := b.nextErr; err != nil {
		b.nextErr = nil
		return nil, err
	}
	out := b.pending
	b.pending = nil
	return out, nil
}

// WaitEvents implements platform.Backend.
func (b *Backend) WaitEvents() ([]platform.Event, error) {
	return b.WaitEventsTimeout(0)
}

// WaitEventsTimeout implements platform.Backend.
func (b *Backend) WaitEventsTimeout(timeout time.Duration) ([]platform.Event, error) {
	var deadline <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}
	for {
		b.mu.Lock()
		if err := b.usable(); err != nil {
			b.mu.Unlock()
			return nil, err
		}
		if b.nextErr != nil || len(b.pending) > 0 {
			out, err := b.takeLocked()
			b.mu.Unlock()
			return out, err
		}
		b.mu.Unlock()

		select {
		case <-b.wake:
		case <-deadline:
			return nil, nil
		}
	}
}

// DrawingContext implements platform.Backend. The returned context is
// stable across calls so tests can inspect recorded operations.
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
	b.windows = make(map[platform.WindowID]*windowState)
	b.pending = nil
	b.cleaned = true
	return nil
}
