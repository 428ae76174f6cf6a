//go:build darwin

package cocoa

import (
	"github.com/ebitengine/purego/objc"

	"github.com/emiliancristea/RX-Framework/platform"
)

// Context draws on one window through its NSGraphicsContext in immediate
// mode. Rectangles go through the AppKit fill helpers; text goes through
// the NSString drawing additions. Present flushes the window backing
// store to the screen.
type Context struct {
	backend *Backend
	win     *window
}

func newContext(b *Backend, w *window) *Context {
	return &Context{backend: b, win: w}
}

// focus makes the window's graphics context current for immediate drawing.
func (c *Context) focus() (objc.ID, error) {
	if err := c.backend.usable(); err != nil {
		return 0, err
	}
	ctx := objc.ID(classNSGraphicsCtx).Send(selGraphicsCtxWithWindow, c.win.nsWindow)
	if ctx == 0 {
		return 0, platform.DrawingError("failed to acquire window graphics context")
	}
	objc.ID(classNSGraphicsCtx).Send(selSetCurrentContext, ctx)
	return ctx, nil
}

func clamp(v float32) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return float64(v)
}

func nsColor(color platform.RGBA) objc.ID {
	return objc.ID(classNSColor).Send(selColorWithCalibrated,
		clamp(color.R), clamp(color.G), clamp(color.B), clamp(color.A))
}

// flip converts a top-left rectangle to AppKit's bottom-up coordinates.
func (c *Context) flip(x, y, width, height float32) nsRect {
	h := c.win.contentSize().Height
	return nsRect{
		Origin: nsPoint{X: float64(x), Y: h - float64(y) - float64(height)},
		Size:   nsSize{Width: float64(width), Height: float64(height)},
	}
}

// Clear implements platform.DrawingContext.
func (c *Context) Clear(color platform.RGBA) error {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	pool := newPool()
	defer pool.drain()
	ctx, err := c.focus()
	if err != nil {
		return err
	}
	nsColor(color).Send(selSet)
	nsRectFill(nsRect{Size: c.win.contentSize()})
	ctx.Send(selFlushGraphics)
	return nil
}

// FillRect implements platform.DrawingContext.
func (c *Context) FillRect(x, y, width, height float32, color platform.RGBA) error {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	pool := newPool()
	defer pool.drain()
	ctx, err := c.focus()
	if err != nil {
		return err
	}
	nsColor(color).Send(selSet)
	nsRectFill(c.flip(x, y, width, height))
	ctx.Send(selFlushGraphics)
	return nil
}

// StrokeRect implements platform.DrawingContext.
func (c *Context) StrokeRect(x, y, width, height float32, color platform.RGBA, lineWidth float32) error {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	pool := newPool()
	defer pool.drain()
	ctx, err := c.focus()
	if err != nil {
		return err
	}
	if lineWidth <= 0 {
		lineWidth = 1
	}
	nsColor(color).Send(selSet)
	nsFrameRectWithWidth(c.flip(x, y, width, height), float64(lineWidth))
	ctx.Send(selFlushGraphics)
	return nil
}

// DrawText implements platform.DrawingContext. AppKit anchors the bottom
// left of the text bounds, so the run sits on the baseline line rather
// than hanging its descenders below it.
func (c *Context) DrawText(text string, x, y float32, color platform.RGBA) error {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	pool := newPool()
	defer pool.drain()
	ctx, err := c.focus()
	if err != nil {
		return err
	}
	attrs := objc.ID(classNSDictionary).Send(selDictWithObject, nsColor(color), foregroundColorAttr)
	point := nsPoint{X: float64(x), Y: c.win.contentSize().Height - float64(y)}
	nsString(text).Send(selDrawAtPoint, point, attrs)
	ctx.Send(selFlushGraphics)
	return nil
}

// Present implements platform.DrawingContext.
func (c *Context) Present() error {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	if err := c.backend.usable(); err != nil {
		return err
	}
	c.win.nsWindow.Send(selFlushWindow)
	return nil
}

// Size implements platform.DrawingContext.
func (c *Context) Size() (uint32, uint32) {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	if err := c.backend.usable(); err != nil {
		return 0, 0
	}
	size := c.win.contentSize()
	return uint32(size.Width), uint32(size.Height)
}
