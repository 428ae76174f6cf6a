package widgets

import (
	"math"
	"strings"
	"time"

	rx "github.com/emiliancristea/RX-Framework"
	"github.com/emiliancristea/RX-Framework/platform"
)

const (
	cursorBlinkInterval = 500 * time.Millisecond
	textInputPadding    = 4
)

// TextInput is a single-line editable text field with caret, selection,
// and an optional placeholder. The caret position and selection bounds
// are rune indices, so multi-byte input lands in one piece.
type TextInput struct {
	BaseWidget
	text             []rune
	placeholder      string
	textColor        rx.Color
	placeholderColor rx.Color
	fillColor        rx.Color
	frameColor       rx.Color
	focusFrameColor  rx.Color
	selectionColor   rx.Color
	cursorColor      rx.Color
	fontSize         float32
	cursorPos        int
	selectionAnchor  int // rune index, -1 when nothing is selected
	cursorVisible    bool
	blinkTimer       time.Duration
	maxLength        int // rune count, 0 means unlimited
	password         bool
	readOnly         bool
	onTextChanged    func(string)
	onEnter          func(string) error
}

// NewTextInput creates an empty text input with the given id.
func NewTextInput(id ID) *TextInput {
	return &TextInput{
		BaseWidget:       NewBaseWidget(id),
		textColor:        rx.Black,
		placeholderColor: rx.Gray,
		fillColor:        rx.White,
		frameColor:       rx.DarkGray,
		focusFrameColor:  rx.Blue,
		selectionColor:   rx.Blue.WithAlpha(0.3),
		cursorColor:      rx.Black,
		fontSize:         14,
		selectionAnchor:  -1,
		cursorVisible:    true,
	}
}

// WithBounds places the input and returns it for chaining.
func (t *TextInput) WithBounds(bounds rx.Rect) *TextInput {
	t.SetBounds(bounds)
	return t
}

// WithPlaceholder sets the placeholder text and returns the input for
// chaining.
func (t *TextInput) WithPlaceholder(placeholder string) *TextInput {
	t.placeholder = placeholder
	return t
}

// WithOnEnter sets the enter handler and returns the input for chaining.
func (t *TextInput) WithOnEnter(fn func(string) error) *TextInput {
	t.onEnter = fn
	return t
}

// SetText replaces the content, truncating to the maximum length. The
// caret is clamped, the selection cleared, and the change callback is
// not invoked for programmatic updates.
func (t *TextInput) SetText(text string) {
	runes := []rune(text)
	if t.maxLength > 0 && len(runes) > t.maxLength {
		runes = runes[:t.maxLength]
	}
	t.text = runes
	if t.cursorPos > len(t.text) {
		t.cursorPos = len(t.text)
	}
	t.selectionAnchor = -1
}

// Text returns the current content.
func (t *TextInput) Text() string {
	return string(t.text)
}

// SetPlaceholder sets the text shown while the input is empty.
func (t *TextInput) SetPlaceholder(placeholder string) {
	t.placeholder = placeholder
}

// Placeholder returns the placeholder text.
func (t *TextInput) Placeholder() string {
	return t.placeholder
}

// SetMaxLength limits the content to n runes. Zero removes the limit.
// Existing content over the limit is truncated.
func (t *TextInput) SetMaxLength(n int) {
	if n < 0 {
		n = 0
	}
	t.maxLength = n
	if n > 0 && len(t.text) > n {
		t.text = t.text[:n]
		if t.cursorPos > n {
			t.cursorPos = n
		}
		t.selectionAnchor = -1
	}
}

// MaxLength returns the rune limit, zero meaning unlimited.
func (t *TextInput) MaxLength() int {
	return t.maxLength
}

// SetPassword masks the content with bullets when enabled.
func (t *TextInput) SetPassword(password bool) {
	t.password = password
}

// IsPassword reports whether the content is masked.
func (t *TextInput) IsPassword() bool {
	return t.password
}

// SetReadOnly blocks edits while still allowing caret movement and
// selection.
func (t *TextInput) SetReadOnly(readOnly bool) {
	t.readOnly = readOnly
}

// IsReadOnly reports whether edits are blocked.
func (t *TextInput) IsReadOnly() bool {
	return t.readOnly
}

// SetFontSize changes the font size, floored at 1.
func (t *TextInput) SetFontSize(size float32) {
	if size < 1 {
		size = 1
	}
	t.fontSize = size
}

// FontSize returns the font size.
func (t *TextInput) FontSize() float32 {
	return t.fontSize
}

// SetTextColor changes the content color.
func (t *TextInput) SetTextColor(color rx.Color) {
	t.textColor = color
}

// SetOnTextChanged sets the callback invoked after every user edit with
// the new content.
func (t *TextInput) SetOnTextChanged(fn func(string)) {
	t.onTextChanged = fn
}

// SetOnEnter sets the handler invoked when return is pressed while the
// input has focus. Its error aborts dispatch of the triggering event.
func (t *TextInput) SetOnEnter(fn func(string) error) {
	t.onEnter = fn
}

// CursorPosition returns the caret as a rune index.
func (t *TextInput) CursorPosition() int {
	return t.cursorPos
}

// SetCursorPosition moves the caret, clamped to the content, and clears
// the selection.
func (t *TextInput) SetCursorPosition(pos int) {
	t.moveCursor(pos, false)
}

// HasSelection reports whether a non-empty selection exists.
func (t *TextInput) HasSelection() bool {
	_, _, ok := t.selectionRange()
	return ok
}

// SelectedText returns the selected content.
func (t *TextInput) SelectedText() string {
	lo, hi, ok := t.selectionRange()
	if !ok {
		return ""
	}
	return string(t.text[lo:hi])
}

// SelectAll selects the entire content and puts the caret at the end.
func (t *TextInput) SelectAll() {
	if len(t.text) == 0 {
		return
	}
	t.selectionAnchor = 0
	t.cursorPos = len(t.text)
	t.showCursor()
}

// ClearSelection drops the selection without touching the content.
func (t *TextInput) ClearSelection() {
	t.selectionAnchor = -1
}

// SetFocused overrides the base behavior to reset the caret blink and,
// on focus loss, drop the selection.
func (t *TextInput) SetFocused(focused bool) {
	t.BaseWidget.SetFocused(focused)
	t.cursorVisible = focused
	t.blinkTimer = 0
	if !focused {
		t.selectionAnchor = -1
	}
}

func (t *TextInput) charWidth() float32 {
	return t.fontSize * 0.6
}

func (t *TextInput) showCursor() {
	t.cursorVisible = true
	t.blinkTimer = 0
}

func (t *TextInput) selectionRange() (lo, hi int, ok bool) {
	if t.selectionAnchor < 0 || t.selectionAnchor == t.cursorPos {
		return 0, 0, false
	}
	lo, hi = t.selectionAnchor, t.cursorPos
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// moveCursor places the caret at target, clamped to the content. With
// selecting the anchor is kept or started at the old caret; without it
// the selection is cleared.
func (t *TextInput) moveCursor(target int, selecting bool) {
	if target < 0 {
		target = 0
	}
	if target > len(t.text) {
		target = len(t.text)
	}
	if selecting {
		if t.selectionAnchor < 0 {
			t.selectionAnchor = t.cursorPos
		}
	} else {
		t.selectionAnchor = -1
	}
	t.cursorPos = target
	t.showCursor()
}

// deleteSelection removes the selected runes and reports whether the
// content changed.
func (t *TextInput) deleteSelection() bool {
	lo, hi, ok := t.selectionRange()
	t.selectionAnchor = -1
	if !ok {
		return false
	}
	t.text = append(t.text[:lo], t.text[hi:]...)
	t.cursorPos = lo
	return true
}

func (t *TextInput) deleteBackward() bool {
	if t.deleteSelection() {
		return true
	}
	if t.cursorPos == 0 {
		return false
	}
	t.text = append(t.text[:t.cursorPos-1], t.text[t.cursorPos:]...)
	t.cursorPos--
	return true
}

func (t *TextInput) deleteForward() bool {
	if t.deleteSelection() {
		return true
	}
	if t.cursorPos >= len(t.text) {
		return false
	}
	t.text = append(t.text[:t.cursorPos], t.text[t.cursorPos+1:]...)
	return true
}

// insertText splices text at the caret, replacing the selection and
// clamping to the maximum length. It reports whether the content
// changed.
func (t *TextInput) insertText(text string) bool {
	changed := t.deleteSelection()
	runes := []rune(text)
	if t.maxLength > 0 {
		room := t.maxLength - len(t.text)
		if room < 0 {
			room = 0
		}
		if len(runes) > room {
			runes = runes[:room]
		}
	}
	if len(runes) == 0 {
		return changed
	}
	out := make([]rune, 0, len(t.text)+len(runes))
	out = append(out, t.text[:t.cursorPos]...)
	out = append(out, runes...)
	out = append(out, t.text[t.cursorPos:]...)
	t.text = out
	t.cursorPos += len(runes)
	return true
}

func (t *TextInput) notifyChanged() {
	if t.onTextChanged != nil {
		t.onTextChanged(string(t.text))
	}
}

// caretFromX maps a window x coordinate to the nearest rune boundary.
func (t *TextInput) caretFromX(x float32) int {
	rel := x - t.Bounds().X - textInputPadding
	col := int(math.Round(float64(rel / t.charWidth())))
	if col < 0 {
		col = 0
	}
	if col > len(t.text) {
		col = len(t.text)
	}
	return col
}

func (t *TextInput) displayText() string {
	if t.password {
		return strings.Repeat("•", len(t.text))
	}
	return string(t.text)
}

// HandleEvent consumes left clicks inside the field, key presses while
// focused, and committed text while focused. Clicks outside are left for
// others, which is how the field loses focus.
func (t *TextInput) HandleEvent(event rx.Event) (bool, error) {
	if !t.IsVisible() || !t.IsEnabled() {
		return false, nil
	}

	switch ev := event.(type) {
	case rx.MousePressedEvent:
		if ev.Button != rx.MouseButtonLeft {
			return false, nil
		}
		point := rx.NewPoint(float32(ev.X), float32(ev.Y))
		if !t.ContainsPoint(point) {
			return false, nil
		}
		t.moveCursor(t.caretFromX(float32(ev.X)), false)
		return true, nil

	case rx.KeyPressedEvent:
		if !t.IsFocused() {
			return false, nil
		}
		return t.handleKey(ev)

	case rx.TextInputEvent:
		if !t.IsFocused() {
			return false, nil
		}
		if !t.readOnly && t.insertText(ev.Text) {
			t.notifyChanged()
		}
		t.showCursor()
		return true, nil
	}
	return false, nil
}

func (t *TextInput) handleKey(ev rx.KeyPressedEvent) (bool, error) {
	switch ev.Key {
	case rx.KeyBackspace:
		if !t.readOnly && t.deleteBackward() {
			t.notifyChanged()
		}
		t.showCursor()
		return true, nil

	case rx.KeyDelete:
		if !t.readOnly && t.deleteForward() {
			t.notifyChanged()
		}
		t.showCursor()
		return true, nil

	case rx.KeyLeft:
		t.moveCursor(t.cursorPos-1, ev.Mods.Shift())
		return true, nil

	case rx.KeyRight:
		t.moveCursor(t.cursorPos+1, ev.Mods.Shift())
		return true, nil

	case rx.KeyHome:
		t.moveCursor(0, ev.Mods.Shift())
		return true, nil

	case rx.KeyEnd:
		t.moveCursor(len(t.text), ev.Mods.Shift())
		return true, nil

	case rx.KeyReturn:
		if t.onEnter != nil {
			if err := t.onEnter(string(t.text)); err != nil {
				return false, err
			}
		}
		return true, nil

	case rx.KeyA:
		if ev.Mods.Ctrl() {
			t.SelectAll()
			return true, nil
		}
	}
	return false, nil
}

// Update advances the caret blink while the input has focus.
func (t *TextInput) Update(delta time.Duration) error {
	if !t.IsFocused() {
		return nil
	}
	t.blinkTimer += delta
	for t.blinkTimer >= cursorBlinkInterval {
		t.blinkTimer -= cursorBlinkInterval
		t.cursorVisible = !t.cursorVisible
	}
	return nil
}

// PreferredSize returns room for roughly ten characters.
func (t *TextInput) PreferredSize() rx.Size {
	return rx.NewSize(t.charWidth()*10+10, t.fontSize*1.5+10)
}

// Render draws the field background, frame, selection, content or
// placeholder, and the caret.
func (t *TextInput) Render(ctx platform.DrawingContext) error {
	if !t.IsVisible() {
		return nil
	}
	bounds := t.Bounds()
	if err := fillRect(ctx, bounds, t.fillColor); err != nil {
		return err
	}
	frame := t.frameColor
	if t.IsFocused() {
		frame = t.focusFrameColor
	}
	if err := strokeRect(ctx, bounds, frame, 1); err != nil {
		return err
	}

	textX := bounds.X + textInputPadding
	baseline := bounds.Y + (bounds.Height+t.fontSize)/2

	if lo, hi, ok := t.selectionRange(); ok {
		sel := rx.NewRect(
			textX+float32(lo)*t.charWidth(),
			bounds.Y+2,
			float32(hi-lo)*t.charWidth(),
			bounds.Height-4,
		)
		if err := fillRect(ctx, sel, t.selectionColor); err != nil {
			return err
		}
	}

	if len(t.text) > 0 {
		if err := drawText(ctx, t.displayText(), textX, baseline, t.textColor); err != nil {
			return err
		}
	} else if t.placeholder != "" && !t.IsFocused() {
		if err := drawText(ctx, t.placeholder, textX, baseline, t.placeholderColor); err != nil {
			return err
		}
	}

	if t.IsFocused() && t.cursorVisible {
		cursor := rx.NewRect(
			textX+float32(t.cursorPos)*t.charWidth(),
			bounds.Y+3,
			1,
			bounds.Height-6,
		)
		if err := fillRect(ctx, cursor, t.cursorColor); err != nil {
			return err
		}
	}
	return nil
}
