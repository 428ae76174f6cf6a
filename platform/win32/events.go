//go:build windows

package win32

import (
	"time"

	"github.com/lxn/win"

	"github.com/emiliancristea/RX-Framework/platform"
)

// enqueue appends events for the next Poll/Wait to hand out.
func enqueue(events ...platform.Event) {
	shared.mu.Lock()
	shared.queue = append(shared.queue, events...)
	shared.mu.Unlock()
}

func takeQueue() []platform.Event {
	shared.mu.Lock()
	out := shared.queue
	shared.queue = nil
	shared.mu.Unlock()
	return out
}

func queueLen() int {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	return len(shared.queue)
}

// wndProc is the window procedure for every backend window. It runs on the
// event loop thread, nested inside DispatchMessage or inside any window
// call that sends a message, so it must not take the backend mutex.
func wndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	shared.mu.Lock()
	id, tracked := shared.byHWND[hwnd]
	shared.mu.Unlock()
	if !tracked {
		return win.DefWindowProc(hwnd, msg, wParam, lParam)
	}

	switch msg {
	case win.WM_CLOSE:
		// The framework owns the window lifetime; report and keep it.
		enqueue(platform.WindowClosed(id))
		return 0

	case win.WM_SIZE:
		enqueue(platform.WindowResized(id,
			uint32(win.LOWORD(uint32(lParam))), uint32(win.HIWORD(uint32(lParam)))))
		return 0

	case win.WM_MOVE:
		enqueue(platform.WindowMoved(id,
			win.GET_X_LPARAM(lParam), win.GET_Y_LPARAM(lParam)))
		return 0

	case win.WM_SETFOCUS:
		enqueue(platform.WindowFocused(id))
		return 0

	case win.WM_KILLFOCUS:
		enqueue(platform.WindowUnfocused(id))
		return 0

	case win.WM_MOUSEMOVE:
		enqueue(platform.MouseMoved(id,
			float64(win.GET_X_LPARAM(lParam)), float64(win.GET_Y_LPARAM(lParam))))
		return 0

	case win.WM_LBUTTONDOWN, win.WM_RBUTTONDOWN, win.WM_MBUTTONDOWN:
		enqueue(platform.MousePressed(id, buttonForMessage(msg),
			float64(win.GET_X_LPARAM(lParam)), float64(win.GET_Y_LPARAM(lParam))))
		return 0

	case win.WM_LBUTTONUP, win.WM_RBUTTONUP, win.WM_MBUTTONUP:
		enqueue(platform.MouseReleased(id, buttonForMessage(msg),
			float64(win.GET_X_LPARAM(lParam)), float64(win.GET_Y_LPARAM(lParam))))
		return 0

	case wmXButtonDown:
		enqueue(platform.MousePressed(id, xButton(wParam),
			float64(win.GET_X_LPARAM(lParam)), float64(win.GET_Y_LPARAM(lParam))))
		return 1

	case wmXButtonUp:
		enqueue(platform.MouseReleased(id, xButton(wParam),
			float64(win.GET_X_LPARAM(lParam)), float64(win.GET_Y_LPARAM(lParam))))
		return 1

	case win.WM_MOUSEWHEEL:
		delta := float64(int16(win.HIWORD(uint32(wParam)))) / 120
		enqueue(platform.MouseWheel(id, 0, delta))
		return 0

	case wmMouseHWheel:
		delta := float64(int16(win.HIWORD(uint32(wParam)))) / 120
		enqueue(platform.MouseWheel(id, delta, 0))
		return 0

	case win.WM_KEYDOWN, win.WM_SYSKEYDOWN:
		enqueue(platform.KeyPressed(id, keyFromVK(wParam), currentMods()))
		return 0

	case win.WM_KEYUP, win.WM_SYSKEYUP:
		enqueue(platform.KeyReleased(id, keyFromVK(wParam), currentMods()))
		return 0

	case win.WM_CHAR:
		if text := charText(wParam); text != "" {
			enqueue(platform.TextInput(id, text))
		}
		return 0
	}
	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

func buttonForMessage(msg uint32) platform.MouseButton {
	switch msg {
	case win.WM_LBUTTONDOWN, win.WM_LBUTTONUP:
		return platform.MouseButtonLeft
	case win.WM_RBUTTONDOWN, win.WM_RBUTTONUP:
		return platform.MouseButtonRight
	default:
		return platform.MouseButtonMiddle
	}
}

// xButton resolves the extended button index from the wParam high word.
// XBUTTON1 and XBUTTON2 become other-button codes 4 and 5, continuing the
// left/right/middle numbering.
func xButton(wParam uintptr) platform.MouseButton {
	return platform.OtherMouseButton(uint8(3 + win.HIWORD(uint32(wParam))))
}

// charText filters WM_CHAR input down to text. Control characters and the
// halves of surrogate pairs are dropped.
func charText(wParam uintptr) string {
	ch := rune(wParam)
	if ch < 0x20 || ch == 0x7f {
		return ""
	}
	if ch >= 0xD800 && ch <= 0xDFFF {
		return ""
	}
	return string(ch)
}

// dispatch routes one message. WM_QUIT never reaches a window procedure,
// so it is handled here.
func dispatch(msg *win.MSG) {
	if msg.Message == win.WM_QUIT {
		enqueue(platform.Quit())
		return
	}
	win.TranslateMessage(msg)
	win.DispatchMessage(msg)
}

// drainMessages dispatches everything already queued by the system without
// blocking.
func drainMessages() {
	var msg win.MSG
	for win.PeekMessage(&msg, 0, 0, 0, win.PM_REMOVE) {
		dispatch(&msg)
	}
}

// PollEvents implements platform.Backend.
func (b *Backend) PollEvents() ([]platform.Event, error) {
	b.mu.Lock()
	err := b.usable()
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	drainMessages()
	return takeQueue(), nil
}

// WaitEvents implements platform.Backend.
func (b *Backend) WaitEvents() ([]platform.Event, error) {
	return b.WaitEventsTimeout(0)
}

// WaitEventsTimeout implements platform.Backend. A thread timer bounds the
// blocking GetMessage call; its WM_TIMER message wakes the loop and is
// dispatched to no window.
func (b *Backend) WaitEventsTimeout(timeout time.Duration) ([]platform.Event, error) {
	b.mu.Lock()
	err := b.usable()
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var timer uintptr
	var deadline time.Time
	if timeout > 0 {
		ms := uint32(timeout / time.Millisecond)
		if ms == 0 {
			ms = 1
		}
		timer = win.SetTimer(0, 0, ms, 0)
		deadline = time.Now().Add(timeout)
		defer win.KillTimer(0, timer)
	}

	for {
		drainMessages()
		if queueLen() > 0 {
			return takeQueue(), nil
		}
		if timeout > 0 && !time.Now().Before(deadline) {
			return nil, nil
		}
		var msg win.MSG
		switch win.GetMessage(&msg, 0, 0, 0) {
		case 0:
			enqueue(platform.Quit())
		case -1:
			return nil, platform.PlatformSpecificError("win32",
				int32(win.GetLastError()), "GetMessage failed")
		default:
			dispatch(&msg)
		}
	}
}
