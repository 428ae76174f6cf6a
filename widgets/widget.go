// Package widgets provides common UI controls and the dispatch machinery
// that routes events through them.
//
// Widgets live in a Manager, which implements rx.WindowContent so it can
// be installed directly as a window's content. Events offered to the
// manager go to the focused widget first, then to the remaining widgets
// from topmost to bottom, stopping at the first one that consumes.
package widgets

import (
	"time"

	rx "github.com/emiliancristea/RX-Framework"
	"github.com/emiliancristea/RX-Framework/platform"
)

// ID uniquely identifies a widget within a Manager.
type ID uint64

// Widget is the contract every UI control implements.
type Widget interface {
	// ID returns the widget's unique id.
	ID() ID

	// Bounds returns the widget's bounding rectangle.
	Bounds() rx.Rect

	// SetBounds moves and resizes the widget.
	SetBounds(bounds rx.Rect)

	// PreferredSize returns the size the widget would choose for itself.
	PreferredSize() rx.Size

	// IsVisible reports whether the widget is rendered and receives
	// events.
	IsVisible() bool

	// SetVisible shows or hides the widget.
	SetVisible(visible bool)

	// IsEnabled reports whether the widget reacts to events.
	IsEnabled() bool

	// SetEnabled enables or disables the widget.
	SetEnabled(enabled bool)

	// SetFocused notifies the widget of keyboard focus changes. The
	// manager calls this as focus moves.
	SetFocused(focused bool)

	// HandleEvent processes an event and reports whether it was
	// consumed. A consumed event is not offered to other widgets.
	HandleEvent(event rx.Event) (bool, error)

	// Update advances time-dependent state by delta.
	Update(delta time.Duration) error

	// Render draws the widget.
	Render(ctx platform.DrawingContext) error
}

// fillRect and strokeRect adapt the framework's geometry and color types
// to the drawing context.
func fillRect(ctx platform.DrawingContext, r rx.Rect, c rx.Color) error {
	return ctx.FillRect(r.X, r.Y, r.Width, r.Height, c.RGBA32())
}

func strokeRect(ctx platform.DrawingContext, r rx.Rect, c rx.Color, lineWidth float32) error {
	return ctx.StrokeRect(r.X, r.Y, r.Width, r.Height, c.RGBA32(), lineWidth)
}

func drawText(ctx platform.DrawingContext, text string, x, y float32, c rx.Color) error {
	return ctx.DrawText(text, x, y, c.RGBA32())
}
