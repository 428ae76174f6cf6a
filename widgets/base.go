package widgets

import (
	"time"

	rx "github.com/emiliancristea/RX-Framework"
	"github.com/emiliancristea/RX-Framework/platform"
)

// BaseWidget carries the state shared by every control: bounds,
// visibility, enabled and focus flags, and optional background and
// border. Concrete widgets embed it and override the behavior they need;
// on its own it satisfies Widget as an inert rectangle, which also makes
// it a convenient stub in tests.
type BaseWidget struct {
	id          ID
	bounds      rx.Rect
	visible     bool
	enabled     bool
	focused     bool
	background  *rx.Color
	borderColor *rx.Color
	borderWidth float32
}

// NewBaseWidget creates a visible, enabled base widget with the given id.
func NewBaseWidget(id ID) BaseWidget {
	return BaseWidget{
		id:      id,
		visible: true,
		enabled: true,
	}
}

// ID returns the widget's unique id.
func (b *BaseWidget) ID() ID {
	return b.id
}

// Bounds returns the widget's bounding rectangle.
func (b *BaseWidget) Bounds() rx.Rect {
	return b.bounds
}

// SetBounds moves and resizes the widget.
func (b *BaseWidget) SetBounds(bounds rx.Rect) {
	b.bounds = bounds
}

// PreferredSize defaults to the current bounds size.
func (b *BaseWidget) PreferredSize() rx.Size {
	return b.bounds.Size()
}

// IsVisible reports whether the widget is rendered and receives events.
func (b *BaseWidget) IsVisible() bool {
	return b.visible
}

// SetVisible shows or hides the widget.
func (b *BaseWidget) SetVisible(visible bool) {
	b.visible = visible
}

// IsEnabled reports whether the widget reacts to events.
func (b *BaseWidget) IsEnabled() bool {
	return b.enabled
}

// SetEnabled enables or disables the widget.
func (b *BaseWidget) SetEnabled(enabled bool) {
	b.enabled = enabled
}

// IsFocused reports whether the widget has keyboard focus.
func (b *BaseWidget) IsFocused() bool {
	return b.focused
}

// SetFocused records the focus flag.
func (b *BaseWidget) SetFocused(focused bool) {
	b.focused = focused
}

// SetBackgroundColor sets the fill drawn behind the widget. Nil clears it.
func (b *BaseWidget) SetBackgroundColor(color *rx.Color) {
	b.background = color
}

// BackgroundColor returns the background fill, or nil when unset.
func (b *BaseWidget) BackgroundColor() *rx.Color {
	return b.background
}

// SetBorder sets the border color and width. A nil color clears the
// border.
func (b *BaseWidget) SetBorder(color *rx.Color, width float32) {
	b.borderColor = color
	b.borderWidth = width
}

// BorderColor returns the border color, or nil when unset.
func (b *BaseWidget) BorderColor() *rx.Color {
	return b.borderColor
}

// BorderWidth returns the border stroke width.
func (b *BaseWidget) BorderWidth() float32 {
	return b.borderWidth
}

// ContainsPoint reports whether the point falls inside the widget bounds.
func (b *BaseWidget) ContainsPoint(point rx.Point) bool {
	return b.bounds.Contains(point)
}

// HandleEvent ignores every event.
func (b *BaseWidget) HandleEvent(event rx.Event) (bool, error) {
	return false, nil
}

// Update does nothing.
func (b *BaseWidget) Update(delta time.Duration) error {
	return nil
}

// Render draws the background and border, if set.
func (b *BaseWidget) Render(ctx platform.DrawingContext) error {
	return b.RenderBase(ctx)
}

// RenderBase draws the background fill and border. Widgets overriding
// Render call this first.
func (b *BaseWidget) RenderBase(ctx platform.DrawingContext) error {
	if !b.visible {
		return nil
	}
	if b.background != nil {
		if err := fillRect(ctx, b.bounds, *b.background); err != nil {
			return err
		}
	}
	if b.borderColor != nil && b.borderWidth > 0 {
		if err := strokeRect(ctx, b.bounds, *b.borderColor, b.borderWidth); err != nil {
			return err
		}
	}
	return nil
}
