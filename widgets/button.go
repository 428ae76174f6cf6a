package widgets

import (
	rx "github.com/emiliancristea/RX-Framework"
	"github.com/emiliancristea/RX-Framework/platform"
)

// Button is a clickable control. The click fires on a left release inside
// the bounds after a press inside the bounds.
type Button struct {
	BaseWidget
	text          string
	textColor     rx.Color
	normalColor   rx.Color
	hoverColor    rx.Color
	pressedColor  rx.Color
	disabledColor rx.Color
	pressed       bool
	hovered       bool
	onClick       func() error
}

// NewButton creates a button with the given id and text.
func NewButton(id ID, text string) *Button {
	base := NewBaseWidget(id)
	background := rx.LightGray
	border := rx.DarkGray
	base.SetBackgroundColor(&background)
	base.SetBorder(&border, 1)

	return &Button{
		BaseWidget:    base,
		text:          text,
		textColor:     rx.Black,
		normalColor:   rx.LightGray,
		hoverColor:    rx.White,
		pressedColor:  rx.Gray,
		disabledColor: rx.DarkGray,
	}
}

// WithBounds places the button and returns it for chaining.
func (b *Button) WithBounds(bounds rx.Rect) *Button {
	b.SetBounds(bounds)
	return b
}

// WithOnClick sets the click callback and returns the button for
// chaining.
func (b *Button) WithOnClick(fn func() error) *Button {
	b.onClick = fn
	return b
}

// SetText changes the button text.
func (b *Button) SetText(text string) {
	b.text = text
}

// Text returns the button text.
func (b *Button) Text() string {
	return b.text
}

// SetTextColor changes the text color.
func (b *Button) SetTextColor(color rx.Color) {
	b.textColor = color
}

// SetColors sets the background colors for the normal, hovered, pressed,
// and disabled states.
func (b *Button) SetColors(normal, hover, pressed, disabled rx.Color) {
	b.normalColor = normal
	b.hoverColor = hover
	b.pressedColor = pressed
	b.disabledColor = disabled
}

// SetOnClick sets the callback fired when the button is clicked. An error
// from the callback aborts the dispatch that delivered the release.
func (b *Button) SetOnClick(fn func() error) {
	b.onClick = fn
}

// IsPressed reports whether a left press is currently held on the button.
func (b *Button) IsPressed() bool {
	return b.pressed
}

// IsHovered reports whether the mouse is over the button.
func (b *Button) IsHovered() bool {
	return b.hovered
}

func (b *Button) currentBackground() rx.Color {
	switch {
	case !b.IsEnabled():
		return b.disabledColor
	case b.pressed:
		return b.pressedColor
	case b.hovered:
		return b.hoverColor
	default:
		return b.normalColor
	}
}

// PreferredSize estimates the size from the text length.
func (b *Button) PreferredSize() rx.Size {
	textWidth := float32(len(b.text)) * 8
	return rx.NewSize(textWidth+20, 16+10)
}

// HandleEvent implements the button interaction state machine.
func (b *Button) HandleEvent(event rx.Event) (bool, error) {
	if !b.IsVisible() || !b.IsEnabled() {
		return false, nil
	}

	switch ev := event.(type) {
	case rx.MousePressedEvent:
		point := rx.NewPoint(float32(ev.X), float32(ev.Y))
		if ev.Button == rx.MouseButtonLeft && b.ContainsPoint(point) {
			b.pressed = true
			return true, nil
		}

	case rx.MouseReleasedEvent:
		point := rx.NewPoint(float32(ev.X), float32(ev.Y))
		if ev.Button == rx.MouseButtonLeft {
			if b.pressed && b.ContainsPoint(point) && b.onClick != nil {
				if err := b.onClick(); err != nil {
					return false, err
				}
			}
			// Every left release resets the press, even one that started
			// elsewhere.
			b.pressed = false
			return true, nil
		}

	case rx.MouseMovedEvent:
		point := rx.NewPoint(float32(ev.X), float32(ev.Y))
		wasHovered := b.hovered
		b.hovered = b.ContainsPoint(point)
		if wasHovered != b.hovered {
			return true, nil
		}

	case rx.MouseLeftEvent:
		b.hovered = false
		b.pressed = false
	}

	return false, nil
}

// Render draws the button background for the current state, the border,
// and the roughly centered text.
func (b *Button) Render(ctx platform.DrawingContext) error {
	if !b.IsVisible() {
		return nil
	}

	bounds := b.Bounds()
	if err := fillRect(ctx, bounds, b.currentBackground()); err != nil {
		return err
	}
	if border := b.BorderColor(); border != nil {
		if err := strokeRect(ctx, bounds, *border, b.BorderWidth()); err != nil {
			return err
		}
	}

	textX := bounds.X + bounds.Width/2 - float32(len(b.text))*4
	textY := bounds.Y + bounds.Height/2 + 8
	return drawText(ctx, b.text, textX, textY, b.textColor)
}
