//go:build windows

package win32

import (
	"syscall"

	"github.com/lxn/win"

	"github.com/emiliancristea/RX-Framework/platform"
)

// Context draws on one window through GDI. Operations render immediately,
// so Present has nothing left to flush.
type Context struct {
	backend *Backend
	win     *window
}

func newContext(b *Backend, w *window) *Context {
	return &Context{backend: b, win: w}
}

func colorref(color platform.RGBA) win.COLORREF {
	clamp := func(v float32) byte {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return byte(v * 255)
	}
	return win.RGB(clamp(color.R), clamp(color.G), clamp(color.B))
}

// withDC runs fn with a device context for the window.
func (c *Context) withDC(fn func(hdc win.HDC) error) error {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	if err := c.backend.usable(); err != nil {
		return err
	}
	hdc := win.GetDC(c.win.hwnd)
	if hdc == 0 {
		return platform.DrawingError("failed to acquire device context")
	}
	defer win.ReleaseDC(c.win.hwnd, hdc)
	return fn(hdc)
}

func fillRect(hdc win.HDC, x, y, width, height int32, color platform.RGBA) {
	brush := win.CreateSolidBrush(colorref(color))
	defer win.DeleteObject(win.HGDIOBJ(brush))
	oldBrush := win.SelectObject(hdc, win.HGDIOBJ(brush))
	oldPen := win.SelectObject(hdc, win.GetStockObject(win.NULL_PEN))
	// Rectangle excludes the right and bottom edge.
	win.Rectangle_(hdc, x, y, x+width+1, y+height+1)
	win.SelectObject(hdc, oldPen)
	win.SelectObject(hdc, oldBrush)
}

// Clear implements platform.DrawingContext.
func (c *Context) Clear(color platform.RGBA) error {
	return c.withDC(func(hdc win.HDC) error {
		var rect win.RECT
		if !win.GetClientRect(c.win.hwnd, &rect) {
			return platform.DrawingError("failed to query client area")
		}
		fillRect(hdc, 0, 0, rect.Right-rect.Left, rect.Bottom-rect.Top, color)
		return nil
	})
}

// FillRect implements platform.DrawingContext.
func (c *Context) FillRect(x, y, width, height float32, color platform.RGBA) error {
	return c.withDC(func(hdc win.HDC) error {
		fillRect(hdc, int32(x), int32(y), int32(width), int32(height), color)
		return nil
	})
}

// StrokeRect implements platform.DrawingContext.
func (c *Context) StrokeRect(x, y, width, height float32, color platform.RGBA, lineWidth float32) error {
	return c.withDC(func(hdc win.HDC) error {
		lw := int32(lineWidth)
		if lw < 1 {
			lw = 1
		}
		pen := win.CreatePen(win.PS_SOLID, lw, colorref(color))
		defer win.DeleteObject(win.HGDIOBJ(pen))
		oldPen := win.SelectObject(hdc, win.HGDIOBJ(pen))
		oldBrush := win.SelectObject(hdc, win.GetStockObject(win.NULL_BRUSH))
		win.Rectangle_(hdc, int32(x), int32(y), int32(x+width), int32(y+height))
		win.SelectObject(hdc, oldBrush)
		win.SelectObject(hdc, oldPen)
		return nil
	})
}

// DrawText implements platform.DrawingContext. The y coordinate is the
// baseline, so the output origin shifts up by the font ascent.
func (c *Context) DrawText(text string, x, y float32, color platform.RGBA) error {
	if text == "" {
		return nil
	}
	utf16, err := syscall.UTF16FromString(text)
	if err != nil {
		return platform.DrawingError("text contains NUL")
	}
	return c.withDC(func(hdc win.HDC) error {
		win.SetBkMode(hdc, win.TRANSPARENT)
		win.SetTextColor(hdc, colorref(color))
		var tm win.TEXTMETRIC
		top := int32(y)
		if win.GetTextMetrics(hdc, &tm) {
			top -= tm.TmAscent
		}
		win.TextOut(hdc, int32(x), top, &utf16[0], int32(len(utf16)-1))
		return nil
	})
}

// Present implements platform.DrawingContext.
func (c *Context) Present() error {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	return c.backend.usable()
}

// Size implements platform.DrawingContext.
func (c *Context) Size() (uint32, uint32) {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	var rect win.RECT
	if !win.GetClientRect(c.win.hwnd, &rect) {
		return 0, 0
	}
	return uint32(rect.Right - rect.Left), uint32(rect.Bottom - rect.Top)
}
