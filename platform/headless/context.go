package headless

import (
	"sync"

	"github.com/emiliancristea/RX-Framework/platform"
)

// Op is one recorded drawing operation.
type Op struct {
	Kind          string // "clear", "fill", "stroke", "text", "present"
	X, Y          float32
	Width, Height float32
	Text          string
	Color         platform.RGBA
	LineWidth     float32
}

// Context is the headless drawing surface. It records every operation so
// tests can assert what a render pass produced.
type Context struct {
	mu     sync.Mutex
	width  uint32
	height uint32
	ops    []Op
}

func newContext(width, height uint32) *Context {
	return &Context{width: width, height: height}
}

func (c *Context) resize(width, height uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width, c.height = width, height
}

func (c *Context) record(op Op) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = append(c.ops, op)
}

// Ops returns a copy of the recorded operations.
func (c *Context) Ops() []Op {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Op, len(c.ops))
	copy(out, c.ops)
	return out
}

// Reset discards the recorded operations.
func (c *Context) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = nil
}

// Clear implements platform.DrawingContext.
func (c *Context) Clear(color platform.RGBA) error {
	c.record(Op{Kind: "clear", Color: color})
	return nil
}

// FillRect implements platform.DrawingContext.
func (c *Context) FillRect(x, y, width, height float32, color platform.RGBA) error {
	c.record(Op{Kind: "fill", X: x, Y: y, Width: width, Height: height, Color: color})
	return nil
}

// StrokeRect implements platform.DrawingContext.
func (c *Context) StrokeRect(x, y, width, height float32, color platform.RGBA, lineWidth float32) error {
	c.record(Op{Kind: "stroke", X: x, Y: y, Width: width, Height: height, Color: color, LineWidth: lineWidth})
	return nil
}

// DrawText implements platform.DrawingContext.
func (c *Context) DrawText(text string, x, y float32, color platform.RGBA) error {
	c.record(Op{Kind: "text", X: x, Y: y, Text: text, Color: color})
	return nil
}

// Present implements platform.DrawingContext.
func (c *Context) Present() error {
	c.record(Op{Kind: "present"})
	return nil
}

// Size implements platform.DrawingContext.
func (c *Context) Size() (uint32, uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
}
