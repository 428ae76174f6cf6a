package rx

import (
	"sync"
	"time"

	"github.com/emiliancristea/RX-Framework/platform"
)

// ============================================================================
// Window
// ============================================================================

// WindowContent receives a window's events and drives its drawing. The
// widgets package provides a Manager implementing it; applications can
// supply their own.
type WindowContent interface {
	// HandleEvent processes an event and reports whether it was consumed.
	HandleEvent(event Event) (bool, error)
	// Update advances time-dependent state by delta.
	Update(delta time.Duration) error
	// Render draws the content. Presenting the frame is the window's job.
	Render(ctx platform.DrawingContext) error
}

// WindowProperties is the cached view of a window's state. The cache is
// kept current from window events as they pass through the application.
type WindowProperties struct {
	Title       string
	Width       uint32
	Height      uint32
	X           int32
	Y           int32
	Visible     bool
	Resizable   bool
	Decorations bool
	AlwaysOnTop bool
	Transparent bool
	Fullscreen  bool
	Focused     bool
}

// Window is a handle to a platform window. It does not own the backend;
// once the owning application shuts the backend down, every native call
// fails with a framework error instead of reaching freed platform state.
type Window struct {
	handle platform.WindowHandle
	guard  *backendGuard

	mu      sync.Mutex
	props   WindowProperties
	content WindowContent
}

// ID returns the window's unique id.
func (w *Window) ID() WindowID {
	return w.handle.ID
}

// Handle returns the underlying platform handle.
func (w *Window) Handle() platform.WindowHandle {
	return w.handle
}

// Properties returns a snapshot of the cached window state.
func (w *Window) Properties() WindowProperties {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.props
}

// SetContent installs the window's content. Pass nil to detach.
func (w *Window) SetContent(content WindowContent) {
	w.mu.Lock()
	w.content = content
	w.mu.Unlock()
}

// Content returns the installed content, or nil.
func (w *Window) Content() WindowContent {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.content
}

// Show makes the window visible.
func (w *Window) Show() error {
	if err := w.guard.with(func(b platform.Backend) error {
		return b.ShowWindow(w.handle)
	}); err != nil {
		return err
	}
	w.setVisible(true)
	return nil
}

// Hide makes the window invisible without destroying it.
func (w *Window) Hide() error {
	if err := w.guard.with(func(b platform.Backend) error {
		return b.HideWindow(w.handle)
	}); err != nil {
		return err
	}
	w.setVisible(false)
	return nil
}

func (w *Window) setVisible(visible bool) {
	w.mu.Lock()
	w.props.Visible = visible
	w.mu.Unlock()
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) error {
	if err := w.guard.with(func(b platform.Backend) error {
		return b.SetWindowTitle(w.handle, title)
	}); err != nil {
		return err
	}
	w.mu.Lock()
	w.props.Title = title
	w.mu.Unlock()
	return nil
}

// Title returns the cached window title.
func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.props.Title
}

// SetSize resizes the window's client area.
func (w *Window) SetSize(width, height uint32) error {
	if err := w.guard.with(func(b platform.Backend) error {
		return b.SetWindowSize(w.handle, width, height)
	}); err != nil {
		return err
	}
	w.mu.Lock()
	w.props.Width = width
	w.props.Height = height
	w.mu.Unlock()
	return nil
}

// Size returns the cached window size.
func (w *Window) Size() (width, height uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.props.Width, w.props.Height
}

// SetPosition moves the window.
func (w *Window) SetPosition(x, y int32) error {
	if err := w.guard.with(func(b platform.Backend) error {
		return b.SetWindowPosition(w.handle, x, y)
	}); err != nil {
		return err
	}
	w.mu.Lock()
	w.props.X = x
	w.props.Y = y
	w.mu.Unlock()
	return nil
}

// Position returns the cached window position.
func (w *Window) Position() (x, y int32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.props.X, w.props.Y
}

// IsVisible reports whether the window is shown.
func (w *Window) IsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.props.Visible
}

// IsFocused reports whether the window has input focus.
func (w *Window) IsFocused() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.props.Focused
}

// DrawingContext returns the window's drawing context for immediate-mode
// drawing outside the content path.
func (w *Window) DrawingContext() (platform.DrawingContext, error) {
	var ctx platform.DrawingContext
	err := w.guard.with(func(b platform.Backend) error {
		c, err := b.DrawingContext(w.handle)
		if err != nil {
			return err
		}
		ctx = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ctx, nil
}

// Close destroys the platform window. The handle stays valid as a value
// but every further native call fails.
func (w *Window) Close() error {
	return w.guard.with(func(b platform.Backend) error {
		return b.DestroyWindow(w.handle)
	})
}

// handleEvent refreshes the property cache from window events and forwards
// the event to the content. Every window sees every event; the property
// cache only reacts to events carrying this window's id.
func (w *Window) handleEvent(event Event) error {
	w.mu.Lock()
	switch ev := event.(type) {
	case WindowResizedEvent:
		if ev.Window == w.handle.ID {
			w.props.Width = ev.Width
			w.props.Height = ev.Height
		}
	case WindowMovedEvent:
		if ev.Window == w.handle.ID {
			w.props.X = ev.X
			w.props.Y = ev.Y
		}
	case WindowFocusedEvent:
		if ev.Window == w.handle.ID {
			w.props.Focused = true
		}
	case WindowUnfocusedEvent:
		if ev.Window == w.handle.ID {
			w.props.Focused = false
		}
	}
	content := w.content
	w.mu.Unlock()

	if content != nil {
		if _, err := content.HandleEvent(event); err != nil {
			return err
		}
	}
	return nil
}

// update advances the content by one frame.
func (w *Window) update(delta time.Duration) error {
	w.mu.Lock()
	content := w.content
	w.mu.Unlock()
	if content != nil {
		return content.Update(delta)
	}
	return nil
}

// render draws the content and presents the frame.
func (w *Window) render() error {
	w.mu.Lock()
	content := w.content
	w.mu.Unlock()
	return w.guard.with(func(b platform.Backend) error {
		ctx, err := b.DrawingContext(w.handle)
		if err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx); err != nil {
				return err
			}
		}
		return ctx.Present()
	})
}

// ============================================================================
// Window Builder
// ============================================================================

// WindowBuilder assembles window parameters before creation.
//
//	window, err := rx.NewWindowBuilder().
//		Title("My App").
//		Size(1024, 768).
//		Centered().
//		Build(app)
type WindowBuilder struct {
	params   platform.WindowParams
	centered bool
}

// NewWindowBuilder creates a builder with default parameters.
func NewWindowBuilder() *WindowBuilder {
	return &WindowBuilder{params: platform.DefaultWindowParams()}
}

// Title sets the window title.
func (b *WindowBuilder) Title(title string) *WindowBuilder {
	b.params.Title = title
	return b
}

// Size sets the client area size.
func (b *WindowBuilder) Size(width, height uint32) *WindowBuilder {
	b.params.Width = width
	b.params.Height = height
	return b
}

// Width sets the client area width.
func (b *WindowBuilder) Width(width uint32) *WindowBuilder {
	b.params.Width = width
	return b
}

// Height sets the client area height.
func (b *WindowBuilder) Height(height uint32) *WindowBuilder {
	b.params.Height = height
	return b
}

// Position sets an explicit window position. Without one the platform
// chooses.
func (b *WindowBuilder) Position(x, y int32) *WindowBuilder {
	b.params.Position = &platform.Point{X: x, Y: y}
	b.centered = false
	return b
}

// Centered positions the window at the center of the primary display.
func (b *WindowBuilder) Centered() *WindowBuilder {
	b.params.Position = nil
	b.centered = true
	return b
}

// Resizable controls whether the user can resize the window.
func (b *WindowBuilder) Resizable(resizable bool) *WindowBuilder {
	b.params.Resizable = resizable
	return b
}

// Decorations controls the title bar and borders.
func (b *WindowBuilder) Decorations(decorations bool) *WindowBuilder {
	b.params.Decorations = decorations
	return b
}

// AlwaysOnTop keeps the window above normal windows.
func (b *WindowBuilder) AlwaysOnTop(alwaysOnTop bool) *WindowBuilder {
	b.params.AlwaysOnTop = alwaysOnTop
	return b
}

// Transparent requests an alpha-blended window where the platform
// supports it.
func (b *WindowBuilder) Transparent(transparent bool) *WindowBuilder {
	b.params.Transparent = transparent
	return b
}

// Fullscreen starts the window in fullscreen mode.
func (b *WindowBuilder) Fullscreen(fullscreen bool) *WindowBuilder {
	b.params.Fullscreen = fullscreen
	return b
}

// Build creates the window and registers it with the application.
func (b *WindowBuilder) Build(app *Application) (*Window, error) {
	params := b.params
	if b.centered {
		if display, ok := platform.PrimaryDisplay(); ok {
			pt := display.CenterOn(params.Width, params.Height)
			params.Position = &pt
		}
	}

	var handle platform.WindowHandle
	err := app.guard.with(func(backend platform.Backend) error {
		h, err := backend.CreateWindow(params)
		if err != nil {
			return err
		}
		handle = h
		return nil
	})
	if err != nil {
		return nil, err
	}

	props := WindowProperties{
		Title:       params.Title,
		Width:       params.Width,
		Height:      params.Height,
		Resizable:   params.Resizable,
		Decorations: params.Decorations,
		AlwaysOnTop: params.AlwaysOnTop,
		Transparent: params.Transparent,
		Fullscreen:  params.Fullscreen,
	}
	if params.Position != nil {
		props.X = params.Position.X
		props.Y = params.Position.Y
	}

	window := &Window{
		handle: handle,
		guard:  app.guard,
		props:  props,
	}
	app.registerWindow(window)
	return window, nil
}

// ============================================================================
// Window Manager
// ============================================================================

// WindowManager keeps an ordered collection of windows. It is not safe for
// concurrent use; the application serializes access.
type WindowManager struct {
	windows []*Window
}

// NewWindowManager creates an empty window manager.
func NewWindowManager() *WindowManager {
	return &WindowManager{}
}

// Add appends a window to the collection.
func (m *WindowManager) Add(window *Window) {
	m.windows = append(m.windows, window)
}

// Remove takes the window with the given id out of the collection and
// returns it, or nil if it is not present.
func (m *WindowManager) Remove(id WindowID) *Window {
	for i, w := range m.windows {
		if w.ID() == id {
			m.windows = append(m.windows[:i], m.windows[i+1:]...)
			return w
		}
	}
	return nil
}

// Get returns the window with the given id.
func (m *WindowManager) Get(id WindowID) (*Window, bool) {
	for _, w := range m.windows {
		if w.ID() == id {
			return w, true
		}
	}
	return nil, false
}

// Windows returns the managed windows in insertion order.
func (m *WindowManager) Windows() []*Window {
	out := make([]*Window, len(m.windows))
	copy(out, m.windows)
	return out
}

// Count returns the number of managed windows.
func (m *WindowManager) Count() int {
	return len(m.windows)
}

// DispatchAll forwards the event to every window, stopping at the first
// error.
func (m *WindowManager) DispatchAll(event Event) error {
	for _, w := range m.windows {
		if err := w.handleEvent(event); err != nil {
			return err
		}
	}
	return nil
}

// UpdateAll advances every window by delta, stopping at the first error.
func (m *WindowManager) UpdateAll(delta time.Duration) error {
	for _, w := range m.windows {
		if err := w.update(delta); err != nil {
			return err
		}
	}
	return nil
}

// RenderAll renders every window, stopping at the first error.
func (m *WindowManager) RenderAll() error {
	for _, w := range m.windows {
		if err := w.render(); err != nil {
			return err
		}
	}
	return nil
}

// CloseAll closes every window, continuing past individual failures and
// returning the first error seen.
func (m *WindowManager) CloseAll() error {
	var first error
	for _, w := range m.windows {
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Clear drops every window from the collection without closing them.
func (m *WindowManager) Clear() {
	m.windows = nil
}
