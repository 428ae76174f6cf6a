package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/emiliancristea/RX-Framework/platform"
)

// Context draws into the terminal cell grid. Coordinates are character
// cells, text baselines are rows, and line width has no meaning at cell
// resolution.
type Context struct {
	backend *Backend
}

func newContext(b *Backend) *Context {
	return &Context{backend: b}
}

func toColor(color platform.RGBA) tcell.Color {
	clamp := func(v float32) int32 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return int32(v * 255)
	}
	return tcell.NewRGBColor(clamp(color.R), clamp(color.G), clamp(color.B))
}

// Clear implements platform.DrawingContext.
func (c *Context) Clear(color platform.RGBA) error {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	if err := c.backend.usable(); err != nil {
		return err
	}
	c.backend.screen.Fill(' ', tcell.StyleDefault.Background(toColor(color)))
	return nil
}

// FillRect implements platform.DrawingContext.
func (c *Context) FillRect(x, y, width, height float32, color platform.RGBA) error {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	if err := c.backend.usable(); err != nil {
		return err
	}
	style := tcell.StyleDefault.Background(toColor(color))
	x0, y0, x1, y1 := cellRect(x, y, width, height)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			c.backend.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
	return nil
}

// StrokeRect implements platform.DrawingContext. The outline is drawn with
// box drawing characters; lineWidth is ignored.
func (c *Context) StrokeRect(x, y, width, height float32, color platform.RGBA, lineWidth float32) error {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	if err := c.backend.usable(); err != nil {
		return err
	}
	style := tcell.StyleDefault.Foreground(toColor(color))
	x0, y0, x1, y1 := cellRect(x, y, width, height)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if cy != y0 && cy != y1 && cx != x0 && cx != x1 {
				continue
			}
			c.backend.screen.SetContent(cx, cy, borderRune(cx, cy, x0, y0, x1, y1), nil, style)
		}
	}
	return nil
}

func borderRune(x, y, x0, y0, x1, y1 int) rune {
	switch {
	case x == x0 && y == y0:
		return tcell.RuneULCorner
	case x == x1 && y == y0:
		return tcell.RuneURCorner
	case x == x0 && y == y1:
		return tcell.RuneLLCorner
	case x == x1 && y == y1:
		return tcell.RuneLRCorner
	case y == y0 || y == y1:
		return tcell.RuneHLine
	}
	return tcell.RuneVLine
}

// cellRect converts a pixel-style rectangle to inclusive cell bounds.
func cellRect(x, y, width, height float32) (x0, y0, x1, y1 int) {
	x0, y0 = int(x), int(y)
	w, h := int(width), int(height)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return x0, y0, x0 + w - 1, y0 + h - 1
}

// DrawText implements platform.DrawingContext. The baseline is the row y.
func (c *Context) DrawText(text string, x, y float32, color platform.RGBA) error {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	if err := c.backend.usable(); err != nil {
		return err
	}
	style := tcell.StyleDefault.Foreground(toColor(color))
	cx, cy := int(x), int(y)
	for i, r := range []rune(text) {
		c.backend.screen.SetContent(cx+i, cy, r, nil, style)
	}
	return nil
}

// Present implements platform.DrawingContext.
func (c *Context) Present() error {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	if err := c.backend.usable(); err != nil {
		return err
	}
	c.backend.screen.Show()
	return nil
}

// Size implements platform.DrawingContext.
func (c *Context) Size() (uint32, uint32) {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	if c.backend.screen == nil {
		return 0, 0
	}
	w, h := c.backend.screen.Size()
	return uint32(w), uint32(h)
}
