//go:build windows

// Package win32 provides the platform backend for Windows. Windows are
// plain Win32 windows driven through user32 and gdi32 via the lxn/win
// bindings; no cgo is involved.
//
// Win32 delivers messages to the thread that created the window, so
// Initialize locks the calling goroutine to its OS thread. The window
// procedure runs reentrantly inside Poll/Wait and inside window calls like
// SetWindowSize; everything it touches lives behind its own lock, separate
// from the backend mutex.
package win32

import (
	"fmt"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	"github.com/lxn/win"

	"github.com/emiliancristea/RX-Framework/platform"
)

const className = "RXFrameworkWindow"

// Messages lxn/win predates.
const (
	wmMouseHWheel = 0x020E
	wmXButtonDown = 0x020B
	wmXButtonUp   = 0x020C
)

// Backend is the Win32 platform backend. Only one backend can be active
// per process because the window class and window procedure are shared.
type Backend struct {
	mu          sync.Mutex
	initialized bool
	cleaned     bool
	nextID      platform.WindowID
	windows     map[platform.WindowID]*window
	instance    win.HINSTANCE
}

type window struct {
	hwnd win.HWND
	ctx  *Context
}

// shared is the state the window procedure reads and writes. It has its
// own lock because the procedure runs nested inside backend calls that
// hold the backend mutex.
var shared struct {
	mu     sync.Mutex
	active *Backend
	byHWND map[win.HWND]platform.WindowID
	queue  []platform.Event
}

var classOnce sync.Once
var classErr error

// New returns an uninitialized Win32 backend.
func New() *Backend {
	return &Backend{
		nextID:  1,
		windows: make(map[platform.WindowID]*window),
	}
}

func (b *Backend) usable() error {
	if !b.initialized {
		return platform.InvalidOperation("win32 backend not initialized")
	}
	if b.cleaned {
		return platform.InvalidOperation("win32 backend already cleaned up")
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
		return platform.PlatformInitError("win32 backend already cleaned up")
	}
	if b.initialized {
		return nil
	}

	shared.mu.Lock()
	if shared.active != nil && shared.active != b {
		shared.mu.Unlock()
		return platform.PlatformInitError("another win32 backend is already active")
	}
	shared.active = b
	shared.byHWND = make(map[win.HWND]platform.WindowID)
	shared.queue = nil
	shared.mu.Unlock()

	// Messages go to the creating thread; pin it.
	runtime.LockOSThread()

	b.instance = win.GetModuleHandle(nil)
	classOnce.Do(func() { classErr = registerClass(b.instance) })
	if classErr != nil {
		return classErr
	}
	b.initialized = true
	return nil
}

func registerClass(instance win.HINSTANCE) error {
	namePtr, err := syscall.UTF16PtrFromString(className)
	if err != nil {
		return platform.PlatformInitError("invalid window class name")
	}
	var wc win.WNDCLASSEX
	wc.CbSize = uint32(unsafe.Sizeof(wc))
	wc.Style = win.CS_HREDRAW | win.CS_VREDRAW
	wc.LpfnWndProc = syscall.NewCallback(wndProc)
	wc.HInstance = instance
	wc.HCursor = win.LoadCursor(0, win.IDC_ARROW)
	wc.HbrBackground = win.HBRUSH(win.COLOR_WINDOW + 1)
	wc.LpszClassName = namePtr
	if win.RegisterClassEx(&wc) == 0 {
		return platform.PlatformInitError("failed to register window class")
	}
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

	style := uint32(win.WS_OVERLAPPEDWINDOW)
	if !params.Decorations {
		style = win.WS_POPUP
	}
	if !params.Resizable {
		style &^= uint32(win.WS_THICKFRAME | win.WS_MAXIMIZEBOX)
	}
	exStyle := uint32(0)
	if params.AlwaysOnTop {
		exStyle |= win.WS_EX_TOPMOST
	}

	width, height := int32(params.Width), int32(params.Height)
	x, y := int32(win.CW_USEDEFAULT), int32(win.CW_USEDEFAULT)
	if params.Position != nil {
		x, y = params.Position.X, params.Position.Y
	}
	if params.Fullscreen {
		style = win.WS_POPUP
		x, y = 0, 0
		width = win.GetSystemMetrics(win.SM_CXSCREEN)
		height = win.GetSystemMetrics(win.SM_CYSCREEN)
	} else {
		// The requested size is the client area.
		rect := win.RECT{Right: width, Bottom: height}
		if win.AdjustWindowRect(&rect, style, false) {
			width = rect.Right - rect.Left
			height = rect.Bottom - rect.Top
		}
	}

	namePtr, err := syscall.UTF16PtrFromString(className)
	if err != nil {
		return platform.WindowHandle{}, platform.WindowError("invalid window class name")
	}
	titlePtr, err := syscall.UTF16PtrFromString(params.Title)
	if err != nil {
		return platform.WindowHandle{}, platform.WindowError("window title contains NUL")
	}

	hwnd := win.CreateWindowEx(exStyle, namePtr, titlePtr, style,
		x, y, width, height, 0, 0, b.instance, nil)
	if hwnd == 0 {
		return platform.WindowHandle{}, platform.PlatformSpecificError("win32",
			int32(win.GetLastError()), "CreateWindowEx failed")
	}

	id := b.nextID
	b.nextID++
	w := &window{hwnd: hwnd}
	w.ctx = newContext(b, w)
	b.windows[id] = w

	shared.mu.Lock()
	shared.byHWND[hwnd] = id
	shared.mu.Unlock()

	return platform.WindowHandle{ID: id, Raw: uintptr(hwnd)}, nil
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
	delete(shared.byHWND, w.hwnd)
	shared.mu.Unlock()
	if !win.DestroyWindow(w.hwnd) {
		return platform.PlatformSpecificError("win32",
			int32(win.GetLastError()), "DestroyWindow failed")
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
	win.ShowWindow(w.hwnd, win.SW_SHOW)
	win.UpdateWindow(w.hwnd)
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
	win.ShowWindow(w.hwnd, win.SW_HIDE)
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
	titlePtr, err := syscall.UTF16PtrFromString(title)
	if err != nil {
		return platform.WindowError("window title contains NUL")
	}
	win.SendMessage(w.hwnd, win.WM_SETTEXT, 0, uintptr(unsafe.Pointer(titlePtr)))
	return nil
}

// SetWindowSize implements platform.Backend. The size is the client area.
func (b *Backend) SetWindowSize(handle platform.WindowHandle, width, height uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.window(handle)
	if err != nil {
		return err
	}
	style := uint32(win.GetWindowLong(w.hwnd, win.GWL_STYLE))
	rect := win.RECT{Right: int32(width), Bottom: int32(height)}
	if win.AdjustWindowRect(&rect, style, false) {
		width = uint32(rect.Right - rect.Left)
		height = uint32(rect.Bottom - rect.Top)
	}
	if !win.SetWindowPos(w.hwnd, 0, 0, 0, int32(width), int32(height),
		win.SWP_NOMOVE|win.SWP_NOZORDER|win.SWP_NOACTIVATE) {
		return platform.PlatformSpecificError("win32",
			int32(win.GetLastError()), "SetWindowPos failed")
	}
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
	var rect win.RECT
	if !win.GetClientRect(w.hwnd, &rect) {
		return 0, 0, platform.PlatformSpecificError("win32",
			int32(win.GetLastError()), "GetClientRect failed")
	}
	return uint32(rect.Right - rect.Left), uint32(rect.Bottom - rect.Top), nil
}

// SetWindowPosition implements platform.Backend.
func (b *Backend) SetWindowPosition(handle platform.WindowHandle, x, y int32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, err := b.window(handle)
	if err != nil {
		return err
	}
	if !win.SetWindowPos(w.hwnd, 0, x, y, 0, 0,
		win.SWP_NOSIZE|win.SWP_NOZORDER|win.SWP_NOACTIVATE) {
		return platform.PlatformSpecificError("win32",
			int32(win.GetLastError()), "SetWindowPos failed")
	}
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
	var rect win.RECT
	if !win.GetWindowRect(w.hwnd, &rect) {
		return 0, 0, platform.PlatformSpecificError("win32",
			int32(win.GetLastError()), "GetWindowRect failed")
	}
	return rect.Left, rect.Top, nil
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
		delete(shared.byHWND, w.hwnd)
		shared.mu.Unlock()
		win.DestroyWindow(w.hwnd)
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
