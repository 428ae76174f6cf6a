package widgets

import (
	"strings"

	rx "github.com/emiliancristea/RX-Framework"
	"github.com/emiliancristea/RX-Framework/platform"
)

// TextAlign places text horizontally within a label.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// VerticalAlign places text vertically within a label.
type VerticalAlign int

const (
	AlignTop VerticalAlign = iota
	AlignMiddle
	AlignBottom
)

// Label displays static text. It never consumes events.
type Label struct {
	BaseWidget
	text          string
	textColor     rx.Color
	fontSize      float32
	textAlign     TextAlign
	verticalAlign VerticalAlign
	wordWrap      bool
	multiline     bool
}

// NewLabel creates a label with the given id and text.
func NewLabel(id ID, text string) *Label {
	return &Label{
		BaseWidget: NewBaseWidget(id),
		text:       text,
		textColor:  rx.Black,
		fontSize:   14,
	}
}

// WithBounds places the label and returns it for chaining.
func (l *Label) WithBounds(bounds rx.Rect) *Label {
	l.SetBounds(bounds)
	return l
}

// WithAlign sets both alignments and returns the label for chaining.
func (l *Label) WithAlign(text TextAlign, vertical VerticalAlign) *Label {
	l.textAlign = text
	l.verticalAlign = vertical
	return l
}

// SetText changes the label text.
func (l *Label) SetText(text string) {
	l.text = text
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetTextColor changes the text color.
func (l *Label) SetTextColor(color rx.Color) {
	l.textColor = color
}

// TextColor returns the text color.
func (l *Label) TextColor() rx.Color {
	return l.textColor
}

// SetFontSize changes the font size, floored at 1.
func (l *Label) SetFontSize(size float32) {
	if size < 1 {
		size = 1
	}
	l.fontSize = size
}

// FontSize returns the font size.
func (l *Label) FontSize() float32 {
	return l.fontSize
}

// SetTextAlign changes the horizontal alignment.
func (l *Label) SetTextAlign(align TextAlign) {
	l.textAlign = align
}

// SetVerticalAlign changes the vertical alignment.
func (l *Label) SetVerticalAlign(align VerticalAlign) {
	l.verticalAlign = align
}

// SetWordWrap wraps lines to the label width when enabled.
func (l *Label) SetWordWrap(wrap bool) {
	l.wordWrap = wrap
}

// WordWrap reports whether word wrap is enabled.
func (l *Label) WordWrap() bool {
	return l.wordWrap
}

// SetMultiline honors newlines in the text when enabled.
func (l *Label) SetMultiline(multiline bool) {
	l.multiline = multiline
}

// Multiline reports whether multiline is enabled.
func (l *Label) Multiline() bool {
	return l.multiline
}

// estimateTextSize approximates rendered text dimensions from the font
// size. There is no real font metric behind the drawing contract, so a
// fixed advance per character stands in.
func (l *Label) estimateTextSize(text string) rx.Size {
	charWidth := l.fontSize * 0.6
	lineHeight := l.fontSize * 1.2

	if l.multiline {
		lines := strings.Split(text, "\n")
		var maxWidth float32
		for _, line := range lines {
			if w := float32(len(line)) * charWidth; w > maxWidth {
				maxWidth = w
			}
		}
		return rx.NewSize(maxWidth, float32(len(lines))*lineHeight)
	}
	return rx.NewSize(float32(len(text))*charWidth, lineHeight)
}

// wrapText splits the text into render lines for the given width.
func (l *Label) wrapText(text string, maxWidth float32) []string {
	if !l.wordWrap {
		if l.multiline {
			return strings.Split(text, "\n")
		}
		return []string{text}
	}

	charWidth := l.fontSize * 0.6
	maxChars := int(maxWidth / charWidth)
	if maxChars == 0 {
		return []string{text}
	}

	sourceLines := []string{text}
	if l.multiline {
		sourceLines = strings.Split(text, "\n")
	}

	var lines []string
	for _, line := range sourceLines {
		if len(line) <= maxChars {
			lines = append(lines, line)
			continue
		}
		var current string
		for _, word := range strings.Fields(line) {
			switch {
			case current == "":
				current = word
			case len(current)+1+len(word) <= maxChars:
				current += " " + word
			default:
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" {
			lines = append(lines, current)
		}
	}
	return lines
}

// textPosition computes the draw position of a line from the alignments.
func (l *Label) textPosition(textSize rx.Size) rx.Point {
	bounds := l.Bounds()

	var x float32
	switch l.textAlign {
	case TextAlignCenter:
		x = bounds.X + (bounds.Width-textSize.Width)/2
	case TextAlignRight:
		x = bounds.X + bounds.Width - textSize.Width - 2
	default:
		x = bounds.X + 2
	}

	var y float32
	switch l.verticalAlign {
	case AlignMiddle:
		y = bounds.Y + (bounds.Height+l.fontSize)/2
	case AlignBottom:
		y = bounds.Y + bounds.Height - 2
	default:
		y = bounds.Y + l.fontSize + 2
	}

	return rx.NewPoint(x, y)
}

// PreferredSize estimates the size needed for the current text.
func (l *Label) PreferredSize() rx.Size {
	size := l.estimateTextSize(l.text)
	return rx.NewSize(size.Width+4, size.Height+4)
}

// Render draws the background, border, and text lines.
func (l *Label) Render(ctx platform.DrawingContext) error {
	if !l.IsVisible() {
		return nil
	}
	if err := l.RenderBase(ctx); err != nil {
		return err
	}
	if l.text == "" {
		return nil
	}

	bounds := l.Bounds()
	lines := l.wrapText(l.text, bounds.Width-4)
	lineHeight := l.fontSize * 1.2

	for i, line := range lines {
		if line == "" {
			continue
		}
		pos := l.textPosition(l.estimateTextSize(line))
		if len(lines) > 1 {
			switch l.verticalAlign {
			case AlignMiddle:
				total := float32(len(lines)) * lineHeight
				pos.Y = bounds.Y + (bounds.Height-total)/2 + float32(i+1)*lineHeight
			case AlignBottom:
				total := float32(len(lines)) * lineHeight
				pos.Y = bounds.Y + bounds.Height - total + float32(i+1)*lineHeight
			default:
				pos.Y += float32(i) * lineHeight
			}
		}
		if err := drawText(ctx, line, pos.X, pos.Y, l.textColor); err != nil {
			return err
		}
	}
	return nil
}
