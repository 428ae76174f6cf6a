// Package x11 provides the platform backend for Linux and other Unix
// systems running an X server. It speaks the X11 wire protocol through the
// pure-Go xgb bindings, so it needs neither cgo nor Xlib at build time.
//
// The backend owns a single display connection. A goroutine pumps events
// off the connection into a channel; PollEvents, WaitEvents and
// WaitEventsTimeout drain that channel and translate the protocol events
// into platform events.
package x11

import (
	"fmt"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/emiliancristea/RX-Framework/platform"
)

// Backend is the X11 platform backend.
type Backend struct {
	mu          sync.Mutex
	initialized bool
	cleaned     bool
	conn        *xgb.Conn
	screen      *xproto.ScreenInfo
	atoms       atoms
	nextID      platform.WindowID
	windows     map[platform.WindowID]*window
	byXID       map[xproto.Window]platform.WindowID

	// events carries protocol events from the pump goroutine to the
	// Poll/Wait callers. The pump closes it when the connection dies.
	events chan xgb.Event
	quit   chan struct{}
}

// window tracks one top-level X window. Geometry is kept current by
// ConfigureNotify so the drawing context knows its surface size without a
// round trip.
type window struct {
	xid    xproto.Window
	width  uint32
	height uint32
	x, y   int32
	ctx    *Context
}

// atoms holds the interned atoms the backend needs beyond the predefined
// set.
type atoms struct {
	wmProtocols          xproto.Atom
	wmDeleteWindow       xproto.Atom
	netWmName            xproto.Atom
	utf8String           xproto.Atom
	motifWmHints         xproto.Atom
	netWmState           xproto.Atom
	netWmStateAbove      xproto.Atom
	netWmStateFullscreen xproto.Atom
}

// New returns an unconnected X11 backend. Initialize opens the display.
func New() *Backend {
	return &Backend{
		nextID:  1,
		windows: make(map[platform.WindowID]*window),
		byXID:   make(map[xproto.Window]platform.WindowID),
	}
}

func (b *Backend) usable() error {
	if !b.initialized {
		return platform.InvalidOperation("x11 backend not initialized")
	}
	if b.cleaned {
		return platform.InvalidOperation("x11 backend already cleaned up")
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

// Initialize implements platform.Backend. It connects to the display named
// by $DISPLAY and starts the event pump.
func (b *Backend) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cleaned {
		return platform.PlatformInitError("x11 backend already cleaned up")
	}
	if b.initialized {
		return nil
	}
	conn, err := xgb.NewConn()
	if err != nil {
		return platform.WrapError(platform.ErrPlatformInit,
			"failed to open X display (is DISPLAY set?)", err)
	}
	b.screen = xproto.Setup(conn).DefaultScreen(conn)
	b.conn = conn
	if err := b.internAtoms(); err != nil {
		conn.Close()
		b.conn = nil
		return platform.WrapError(platform.ErrPlatformInit, "failed to intern atoms", err)
	}
	b.events = make(chan xgb.Event, 64)
	b.quit = make(chan struct{})
	go pump(conn, b.events, b.quit)
	b.initialized = true
	return nil
}

func (b *Backend) internAtoms() error {
	intern := func(name string) (xproto.Atom, error) {
		reply, err := xproto.InternAtom(b.conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			return 0, fmt.Errorf("intern %s: %w", name, err)
		}
		return reply.Atom, nil
	}
	var err error
	for _, a := range []struct {
		name string
		dst  *xproto.Atom
	}{
		{"WM_PROTOCOLS", &b.atoms.wmProtocols},
		{"WM_DELETE_WINDOW", &b.atoms.wmDeleteWindow},
		{"_NET_WM_NAME", &b.atoms.netWmName},
		{"UTF8_STRING", &b.atoms.utf8String},
		{"_MOTIF_WM_HINTS", &b.atoms.motifWmHints},
		{"_NET_WM_STATE", &b.atoms.netWmState},
		{"_NET_WM_STATE_ABOVE", &b.atoms.netWmStateAbove},
		{"_NET_WM_STATE_FULLSCREEN", &b.atoms.netWmStateFullscreen},
	} {
		if *a.dst, err = intern(a.name); err != nil {
			return err
		}
	}
	return nil
}

// CreateWindow implements platform.Backend. The window is created unmapped;
// ShowWindow maps it.
func (b *Backend) CreateWindow(params platform.WindowParams) (platform.WindowHandle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.usable(); err != nil {
		return platform.WindowHandle{}, err
	}
	xid, err := xproto.NewWindowId(b.conn)
	if err != nil {
		return platform.WindowHandle{}, platform.WrapError(platform.ErrWindow,
			"failed to allocate window id", err)
	}
	var x, y int16
	if params.Position != nil {
		x, y = int16(params.Position.X), int16(params.Position.Y)
	}
	mask := uint32(xproto.EventMaskExposure |
		xproto.EventMaskKeyPress | xproto.EventMaskKeyRelease |
		xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease |
		xproto.EventMaskPointerMotion |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskFocusChange |
		xproto.EventMaskEnterWindow | xproto.EventMaskLeaveWindow)
	err = xproto.CreateWindowChecked(b.conn, b.screen.RootDepth, xid, b.screen.Root,
		x, y, uint16(params.Width), uint16(params.Height), 0,
		xproto.WindowClassInputOutput, b.screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{b.screen.WhitePixel, mask}).Check()
	if err != nil {
		return platform.WindowHandle{}, platform.WrapError(platform.ErrWindow,
			"failed to create window", err)
	}
	if err := b.configureNewWindow(xid, params); err != nil {
		xproto.DestroyWindow(b.conn, xid)
		return platform.WindowHandle{}, err
	}

	id := b.nextID
	b.nextID++
	w := &window{
		xid:    xid,
		width:  params.Width,
		height: params.Height,
		x:      int32(x),
		y:      int32(y),
	}
	w.ctx = newContext(b, w)
	b.windows[id] = w
	b.byXID[xid] = id
	return platform.WindowHandle{ID: id, Raw: uintptr(xid)}, nil
}

// configureNewWindow applies the window manager properties a fresh window
// needs before it is mapped.
func (b *Backend) configureNewWindow(xid xproto.Window, params platform.WindowParams) error {
	if err := b.setTitle(xid, params.Title); err != nil {
		return err
	}
	// Opt in to the close protocol so the window manager sends a client
	// message instead of killing the connection.
	if err := b.changeProp32(xid, b.atoms.wmProtocols, xproto.AtomAtom,
		uint32(b.atoms.wmDeleteWindow)); err != nil {
		return err
	}
	if !params.Resizable {
		if err := b.fixSize(xid, params.Width, params.Height); err != nil {
			return err
		}
	}
	if !params.Decorations {
		// Motif hints with a zero decorations field strip the frame.
		if err := b.changeProp32(xid, b.atoms.motifWmHints, b.atoms.motifWmHints,
			2, 0, 0, 0, 0); err != nil {
			return err
		}
	}
	var states []uint32
	if params.AlwaysOnTop {
		states = append(states, uint32(b.atoms.netWmStateAbove))
	}
	if params.Fullscreen {
		states = append(states, uint32(b.atoms.netWmStateFullscreen))
	}
	if len(states) > 0 {
		return b.changeProp32(xid, b.atoms.netWmState, xproto.AtomAtom, states...)
	}
	return nil
}

// changeProp32 replaces a 32-bit format property on the window.
func (b *Backend) changeProp32(win xproto.Window, prop, typ xproto.Atom, values ...uint32) error {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		xgb.Put32(data[4*i:], v)
	}
	err := xproto.ChangePropertyChecked(b.conn, xproto.PropModeReplace, win,
		prop, typ, 32, uint32(len(values)), data).Check()
	if err != nil {
		return platform.WrapError(platform.ErrWindow, "failed to change window property", err)
	}
	return nil
}

func (b *Backend) setTitle(win xproto.Window, title string) error {
	err := xproto.ChangePropertyChecked(b.conn, xproto.PropModeReplace, win,
		xproto.AtomWmName, xproto.AtomString, 8, uint32(len(title)), []byte(title)).Check()
	if err != nil {
		return platform.WrapError(platform.ErrWindow, "failed to set window title", err)
	}
	err = xproto.ChangePropertyChecked(b.conn, xproto.PropModeReplace, win,
		b.atoms.netWmName, b.atoms.utf8String, 8, uint32(len(title)), []byte(title)).Check()
	if err != nil {
		return platform.WrapError(platform.ErrWindow, "failed to set window title", err)
	}
	return nil
}

// fixSize pins min and max size hints to the same value so the window
// manager refuses resizes.
func (b *Backend) fixSize(win xproto.Window, width, height uint32) error {
	var hints [18]uint32
	hints[0] = 16 | 32 // PMinSize | PMaxSize
	hints[5] = width
	hints[6] = height
	hints[7] = width
	hints[8] = height
	return b.changeProp32(win, xproto.AtomWmNormalHints, xproto.AtomWmSizeHints, hints[:]...)
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
	delete(b.byXID, w.xid)
	if err := xproto.DestroyWindowChecked(b.conn, w.xid).Check(); err != nil {
		return platform.WrapError(platform.ErrWindow, "failed to destroy window", err)
	}
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
	if err := xproto.MapWindowChecked(b.conn, w.xid).Check(); err != nil {
		return platform.WrapError(platform.ErrWindow, "failed to map window", err)
	}
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
	if err := xproto.UnmapWindowChecked(b.conn, w.xid).Check(); err != nil {
		return platform.WrapError(platform.ErrWindow, "failed to unmap window", err)
	}
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
	return b.setTitle(w.xid, title)
}

// SetWindowSize implements platform.Backend.
func (b *Backend) SetWindowSize(handle platform.WindowHandle, width, height uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.window(handle)
	if err != nil {
		return err
	}
	err = xproto.ConfigureWindowChecked(b.conn, w.xid,
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{width, height}).Check()
	if err != nil {
		return platform.WrapError(platform.ErrWindow, "failed to resize window", err)
	}
	w.width, w.height = width, height
	return nil
}

// WindowSize implements platform.Backend. The size is read back from the
// server, not the cache, so callers see the geometry the window manager
// actually granted.
func (b *Backend) WindowSize(handle platform.WindowHandle) (uint32, uint32, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.window(handle)
	if err != nil {
		return 0, 0, err
	}
	geom, err := xproto.GetGeometry(b.conn, xproto.Drawable(w.xid)).Reply()
	if err != nil {
		return 0, 0, platform.WrapError(platform.ErrWindow, "failed to query window geometry", err)
	}
	w.width, w.height = uint32(geom.Width), uint32(geom.Height)
	return w.width, w.height, nil
}

// SetWindowPosition implements platform.Backend.
func (b *Backend) SetWindowPosition(handle platform.WindowHandle, x, y int32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.window(handle)
	if err != nil {
		return err
	}
	err = xproto.ConfigureWindowChecked(b.conn, w.xid,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(x), uint32(y)}).Check()
	if err != nil {
		return platform.WrapError(platform.ErrWindow, "failed to move window", err)
	}
	w.x, w.y = x, y
	return nil
}

// WindowPosition implements platform.Backend. Positions are translated to
// root coordinates because reparenting window managers make GetGeometry
// report frame-relative values.
func (b *Backend) WindowPosition(handle platform.WindowHandle) (int32, int32, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.window(handle)
	if err != nil {
		return 0, 0, err
	}
	reply, err := xproto.TranslateCoordinates(b.conn, w.xid, b.screen.Root, 0, 0).Reply()
	if err != nil {
		return 0, 0, platform.WrapError(platform.ErrWindow, "failed to query window position", err)
	}
	w.x, w.y = int32(reply.DstX), int32(reply.DstY)
	return w.x, w.y, nil
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

// Cleanup implements platform.Backend. It closes the display connection,
// which also destroys every window the backend created.
func (b *Backend) Cleanup() error {
	b.mu.Lock()
	if b.cleaned {
		b.mu.Unlock()
		return nil
	}
	b.cleaned = true
	conn := b.conn
	quit := b.quit
	b.conn = nil
	b.windows = make(map[platform.WindowID]*window)
	b.byXID = make(map[xproto.Window]platform.WindowID)
	b.mu.Unlock()

	if quit != nil {
		close(quit)
	}
	if conn != nil {
		conn.Close()
	}
	return nil
}
