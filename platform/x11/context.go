package x11

import (
	"github.com/jezek/xgb/xproto"

	"github.com/emiliancristea/RX-Framework/platform"
)

// Context draws on one window with a server-side graphics context. Requests
// are pipelined; Present forces the round trip that flushes them.
type Context struct {
	backend *Backend
	win     *window
	gc      xproto.Gcontext
	gcReady bool
}

func newContext(b *Backend, w *window) *Context {
	return &Context{backend: b, win: w}
}

// ensureGC lazily creates the graphics context on first use. Graphics
// exposures stay off so copies never generate events.
func (c *Context) ensureGC() error {
	if err := c.backend.usable(); err != nil {
		return err
	}
	if c.gcReady {
		return nil
	}
	gc, err := xproto.NewGcontextId(c.backend.conn)
	if err != nil {
		return platform.WrapError(platform.ErrDrawing, "failed to allocate graphics context", err)
	}
	err = xproto.CreateGCChecked(c.backend.conn, gc, xproto.Drawable(c.win.xid),
		xproto.GcForeground|xproto.GcGraphicsExposures,
		[]uint32{c.backend.screen.BlackPixel, 0}).Check()
	if err != nil {
		return platform.WrapError(platform.ErrDrawing, "failed to create graphics context", err)
	}
	c.gc = gc
	c.gcReady = true
	return nil
}

// pixel packs a normalized color for a 24-bit true color visual.
func pixel(color platform.RGBA) uint32 {
	clamp := func(v float32) uint32 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint32(v * 255)
	}
	return clamp(color.R)<<16 | clamp(color.G)<<8 | clamp(color.B)
}

func (c *Context) setForeground(color platform.RGBA) {
	xproto.ChangeGC(c.backend.conn, c.gc, xproto.GcForeground, []uint32{pixel(color)})
}

// Clear implements platform.DrawingContext.
func (c *Context) Clear(color platform.RGBA) error {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	if err := c.ensureGC(); err != nil {
		return err
	}
	c.setForeground(color)
	xproto.PolyFillRectangle(c.backend.conn, xproto.Drawable(c.win.xid), c.gc,
		[]xproto.Rectangle{{X: 0, Y: 0, Width: uint16(c.win.width), Height: uint16(c.win.height)}})
	return nil
}

// FillRect implements platform.DrawingContext.
func (c *Context) FillRect(x, y, width, height float32, color platform.RGBA) error {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	if err := c.ensureGC(); err != nil {
		return err
	}
	c.setForeground(color)
	xproto.PolyFillRectangle(c.backend.conn, xproto.Drawable(c.win.xid), c.gc,
		[]xproto.Rectangle{{X: int16(x), Y: int16(y), Width: uint16(width), Height: uint16(height)}})
	return nil
}

// StrokeRect implements platform.DrawingContext.
func (c *Context) StrokeRect(x, y, width, height float32, color platform.RGBA, lineWidth float32) error {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	if err := c.ensureGC(); err != nil {
		return err
	}
	lw := uint32(lineWidth)
	if lw == 0 {
		lw = 1
	}
	xproto.ChangeGC(c.backend.conn, c.gc, xproto.GcForeground|xproto.GcLineWidth,
		[]uint32{pixel(color), lw})
	xproto.PolyRectangle(c.backend.conn, xproto.Drawable(c.win.xid), c.gc,
		[]xproto.Rectangle{{X: int16(x), Y: int16(y), Width: uint16(width), Height: uint16(height)}})
	return nil
}

// DrawText implements platform.DrawingContext. Text renders in the server
// default font with the baseline at y. ImageText8 caps a request at 255
// bytes, so longer strings are cut.
func (c *Context) DrawText(text string, x, y float32, color platform.RGBA) error {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	if err := c.ensureGC(); err != nil {
		return err
	}
	if len(text) > 255 {
		text = text[:255]
	}
	c.setForeground(color)
	xproto.ImageText8(c.backend.conn, byte(len(text)), xproto.Drawable(c.win.xid), c.gc,
		int16(x), int16(y), text)
	return nil
}

// Present implements platform.DrawingContext.
func (c *Context) Present() error {
	c.backend.mu.Lock()
	err := c.backend.usable()
	conn := c.backend.conn
	c.backend.mu.Unlock()
	if err != nil {
		return err
	}
	conn.Sync()
	return nil
}

// Size implements platform.DrawingContext.
func (c *Context) Size() (uint32, uint32) {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	return c.win.width, c.win.height
}
