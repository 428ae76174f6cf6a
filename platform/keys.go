package platform

import (
	"fmt"
	"strings"
)

// ============================================================================
// Keys
// ============================================================================

// Key identifies a keyboard key independent of the platform that reported
// it. Keys a backend cannot map are wrapped with UnknownKey so the raw code
// survives normalization.
type Key uint32

// The classification helpers below rely on the grouping of this block.
const (
	// KeyNone is the zero value; no key.
	KeyNone Key = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Numbers
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Special keys
	KeyEscape
	KeyTab
	KeySpace
	KeyReturn
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	// Modifiers
	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftMeta
	KeyRightMeta
)

// unknownKeyBit marks keys carrying a raw platform code instead of a
// canonical value.
const unknownKeyBit Key = 1 << 31

// UnknownKey wraps a platform key code that has no canonical mapping. The
// code is preserved so callers can still tell such keys apart.
func UnknownKey(code uint32) Key {
	return Key(code)&^unknownKeyBit | unknownKeyBit
}

// IsUnknown reports whether the key is an unmapped platform code.
func (k Key) IsUnknown() bool {
	return k&unknownKeyBit != 0
}

// Code returns the raw platform code of an unknown key. The second result
// is false for canonical keys.
func (k Key) Code() (uint32, bool) {
	if !k.IsUnknown() {
		return 0, false
	}
	return uint32(k &^ unknownKeyBit), true
}

// IsModifier reports whether the key is one of the modifier keys.
func (k Key) IsModifier() bool {
	return k >= KeyLeftShift && k <= KeyRightMeta
}

// IsFunction reports whether the key is F1 through F12.
func (k Key) IsFunction() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrow reports whether the key is an arrow key.
func (k Key) IsArrow() bool {
	return k >= KeyLeft && k <= KeyDown
}

// IsPrintable reports whether the key produces a visible character on its
// own (letters, digits and space).
func (k Key) IsPrintable() bool {
	return (k >= KeyA && k <= Key9) || k == KeySpace
}

// Rune returns the lowercase character for a printable key. The second
// result is false for everything else.
func (k Key) Rune() (rune, bool) {
	switch {
	case k >= KeyA && k <= KeyZ:
		return 'a' + rune(k-KeyA), true
	case k >= Key0 && k <= Key9:
		return '0' + rune(k-Key0), true
	case k == KeySpace:
		return ' ', true
	}
	return 0, false
}

var keyNames = []string{
	KeyNone: "None",

	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyF11: "F11", KeyF12: "F12",

	KeyEscape: "Escape", KeyTab: "Tab", KeySpace: "Space",
	KeyReturn: "Return", KeyBackspace: "Backspace", KeyDelete: "Delete",
	KeyInsert: "Insert", KeyHome: "Home", KeyEnd: "End",
	KeyPageUp: "PageUp", KeyPageDown: "PageDown",

	KeyLeft: "Left", KeyRight: "Right", KeyUp: "Up", KeyDown: "Down",

	KeyLeftShift: "LeftShift", KeyRightShift: "RightShift",
	KeyLeftCtrl: "LeftCtrl", KeyRightCtrl: "RightCtrl",
	KeyLeftAlt: "LeftAlt", KeyRightAlt: "RightAlt",
	KeyLeftMeta: "LeftMeta", KeyRightMeta: "RightMeta",
}

// String returns the key's canonical name.
func (k Key) String() string {
	if code, ok := k.Code(); ok {
		return fmt.Sprintf("Unknown(%d)", code)
	}
	if int(k) < len(keyNames) && keyNames[k] != "" {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint32(k))
}

// ============================================================================
// Modifiers
// ============================================================================

// Modifiers is the set of modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta // Cmd on macOS, Win key on Windows
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Meta() bool  { return m&ModMeta != 0 }

// Empty reports whether no modifier is held.
func (m Modifiers) Empty() bool { return m == 0 }

// String returns the held modifiers joined with "+", or "None".
func (m Modifiers) String() string {
	if m == 0 {
		return "None"
	}
	parts := make([]string, 0, 4)
	if m.Shift() {
		parts = append(parts, "Shift")
	}
	if m.Ctrl() {
		parts = append(parts, "Ctrl")
	}
	if m.Alt() {
		parts = append(parts, "Alt")
	}
	if m.Meta() {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// ============================================================================
// Mouse Buttons
// ============================================================================

// MouseButton identifies which mouse button an event refers to.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// otherButtonBit marks extra buttons (back, forward, ...) so their codes
// never collide with the named buttons.
const otherButtonBit MouseButton = 1 << 7

// OtherMouseButton wraps an extra button code reported by the platform.
func OtherMouseButton(code uint8) MouseButton {
	return MouseButton(code)&^otherButtonBit | otherButtonBit
}

// IsOther reports whether the button is an extra button.
func (b MouseButton) IsOther() bool {
	return b&otherButtonBit != 0
}

// OtherCode returns the platform code of an extra button, or 0 for the
// named buttons.
func (b MouseButton) OtherCode() uint8 {
	if !b.IsOther() {
		return 0
	}
	return uint8(b &^ otherButtonBit)
}

// String returns the button's name.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonNone:
		return "None"
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	}
	if b.IsOther() {
		return fmt.Sprintf("Other(%d)", b.OtherCode())
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}
