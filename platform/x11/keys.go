package x11

import (
	"unicode"

	"github.com/jezek/xgb/xproto"

	"github.com/emiliancristea/RX-Framework/platform"
)

// keycodes maps X keycodes to platform keys. The values follow the evdev
// ruleset every current X server ships (kernel scancode plus 8), which
// makes the table layout-independent for the keys the platform names.
var keycodes = map[xproto.Keycode]platform.Key{
	9:  platform.KeyEscape,
	10: platform.Key1,
	11: platform.Key2,
	12: platform.Key3,
	13: platform.Key4,
	14: platform.Key5,
	15: platform.Key6,
	16: platform.Key7,
	17: platform.Key8,
	18: platform.Key9,
	19: platform.Key0,
	22: platform.KeyBackspace,
	23: platform.KeyTab,
	24: platform.KeyQ,
	25: platform.KeyW,
	26: platform.KeyE,
	27: platform.KeyR,
	28: platform.KeyT,
	29: platform.KeyY,
	30: platform.KeyU,
	31: platform.KeyI,
	32: platform.KeyO,
	33: platform.KeyP,
	36: platform.KeyReturn,
	37: platform.KeyLeftCtrl,
	38: platform.KeyA,
	39: platform.KeyS,
	40: platform.KeyD,
	41: platform.KeyF,
	42: platform.KeyG,
	43: platform.KeyH,
	44: platform.KeyJ,
	45: platform.KeyK,
	46: platform.KeyL,
	50: platform.KeyLeftShift,
	52: platform.KeyZ,
	53: platform.KeyX,
	54: platform.KeyC,
	55: platform.KeyV,
	56: platform.KeyB,
	57: platform.KeyN,
	58: platform.KeyM,
	62: platform.KeyRightShift,
	64: platform.KeyLeftAlt,
	65: platform.KeySpace,
	67: platform.KeyF1,
	68: platform.KeyF2,
	69: platform.KeyF3,
	70: platform.KeyF4,
	71: platform.KeyF5,
	72: platform.KeyF6,
	73: platform.KeyF7,
	74: platform.KeyF8,
	75: platform.KeyF9,
	76: platform.KeyF10,
	95: platform.KeyF11,
	96: platform.KeyF12,

	104: platform.KeyReturn, // keypad enter
	105: platform.KeyRightCtrl,
	108: platform.KeyRightAlt,
	110: platform.KeyHome,
	111: platform.KeyUp,
	112: platform.KeyPageUp,
	113: platform.KeyLeft,
	114: platform.KeyRight,
	115: platform.KeyEnd,
	116: platform.KeyDown,
	117: platform.KeyPageDown,
	118: platform.KeyInsert,
	119: platform.KeyDelete,
	133: platform.KeyLeftMeta,
	134: platform.KeyRightMeta,
}

func keyFromCode(code xproto.Keycode) platform.Key {
	if key, ok := keycodes[code]; ok {
		return key
	}
	return platform.UnknownKey(uint32(code))
}

func modsFromState(state uint16) platform.Modifiers {
	var mods platform.Modifiers
	if state&xproto.ModMaskShift != 0 {
		mods |= platform.ModShift
	}
	if state&xproto.ModMaskControl != 0 {
		mods |= platform.ModCtrl
	}
	if state&xproto.ModMask1 != 0 {
		mods |= platform.ModAlt
	}
	if state&xproto.ModMask4 != 0 {
		mods |= platform.ModMeta
	}
	return mods
}

// buttonFromDetail maps core protocol button numbers. Buttons past the
// wheel range (8 is back, 9 is forward) come through as other buttons.
func buttonFromDetail(detail byte) platform.MouseButton {
	switch detail {
	case 1:
		return platform.MouseButtonLeft
	case 2:
		return platform.MouseButtonMiddle
	case 3:
		return platform.MouseButtonRight
	default:
		return platform.OtherMouseButton(detail)
	}
}

// wheelFromDetail reports whether the button number is one of the scroll
// pseudo-buttons and the step it encodes. Button 4 scrolls up, 5 down,
// 6 left, 7 right.
func wheelFromDetail(detail byte) (deltaX, deltaY float64, wheel bool) {
	switch detail {
	case 4:
		return 0, 1, true
	case 5:
		return 0, -1, true
	case 6:
		return -1, 0, true
	case 7:
		return 1, 0, true
	}
	return 0, 0, false
}

// textForKey synthesizes the text a key press produces. Without an input
// method only the layout-independent printable keys are covered, which
// matches what the core protocol can promise.
func textForKey(key platform.Key, mods platform.Modifiers) string {
	if mods&(platform.ModCtrl|platform.ModAlt|platform.ModMeta) != 0 {
		return ""
	}
	r, ok := key.Rune()
	if !ok {
		return ""
	}
	if mods&platform.ModShift != 0 {
		r = unicode.ToUpper(r)
	}
	return string(r)
}
