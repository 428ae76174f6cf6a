//go:build darwin

package cocoa

import "github.com/emiliancristea/RX-Framework/platform"

// keycodes maps macOS virtual key codes to platform keys. Virtual key
// codes name physical key positions on the ANSI layout; they do not
// change with the active keyboard layout.
var keycodes = map[uint16]platform.Key{
	0:   platform.KeyA,
	1:   platform.KeyS,
	2:   platform.KeyD,
	3:   platform.KeyF,
	4:   platform.KeyH,
	5:   platform.KeyG,
	6:   platform.KeyZ,
	7:   platform.KeyX,
	8:   platform.KeyC,
	9:   platform.KeyV,
	11:  platform.KeyB,
	12:  platform.KeyQ,
	13:  platform.KeyW,
	14:  platform.KeyE,
	15:  platform.KeyR,
	16:  platform.KeyY,
	17:  platform.KeyT,
	18:  platform.Key1,
	19:  platform.Key2,
	20:  platform.Key3,
	21:  platform.Key4,
	22:  platform.Key6,
	23:  platform.Key5,
	25:  platform.Key9,
	26:  platform.Key7,
	28:  platform.Key8,
	29:  platform.Key0,
	31:  platform.KeyO,
	32:  platform.KeyU,
	34:  platform.KeyI,
	35:  platform.KeyP,
	36:  platform.KeyReturn,
	37:  platform.KeyL,
	38:  platform.KeyJ,
	40:  platform.KeyK,
	45:  platform.KeyN,
	46:  platform.KeyM,
	48:  platform.KeyTab,
	49:  platform.KeySpace,
	51:  platform.KeyBackspace,
	53:  platform.KeyEscape,
	54:  platform.KeyRightMeta,
	55:  platform.KeyLeftMeta,
	56:  platform.KeyLeftShift,
	58:  platform.KeyLeftAlt,
	59:  platform.KeyLeftCtrl,
	60:  platform.KeyRightShift,
	61:  platform.KeyRightAlt,
	62:  platform.KeyRightCtrl,
	76:  platform.KeyReturn, // keypad enter
	96:  platform.KeyF5,
	97:  platform.KeyF6,
	98:  platform.KeyF7,
	99:  platform.KeyF3,
	100: platform.KeyF8,
	101: platform.KeyF9,
	103: platform.KeyF11,
	109: platform.KeyF10,
	111: platform.KeyF12,
	114: platform.KeyInsert, // help on older keyboards
	115: platform.KeyHome,
	116: platform.KeyPageUp,
	117: platform.KeyDelete,
	118: platform.KeyF4,
	119: platform.KeyEnd,
	120: platform.KeyF2,
	121: platform.KeyPageDown,
	122: platform.KeyF1,
	123: platform.KeyLeft,
	124: platform.KeyRight,
	125: platform.KeyDown,
	126: platform.KeyUp,
}

func keyFromCode(code uint16) platform.Key {
	if key, ok := keycodes[code]; ok {
		return key
	}
	return platform.UnknownKey(uint32(code))
}

func modsFromFlags(flags uint64) platform.Modifiers {
	var mods platform.Modifiers
	if flags&flagShift != 0 {
		mods |= platform.ModShift
	}
	if flags&flagControl != 0 {
		mods |= platform.ModCtrl
	}
	if flags&flagOption != 0 {
		mods |= platform.ModAlt
	}
	if flags&flagCommand != 0 {
		mods |= platform.ModMeta
	}
	return mods
}

// flagForKey gives the modifier flag bit a modifier key toggles, used to
// turn flagsChanged transitions into press and release events.
func flagForKey(key platform.Key) (uint64, bool) {
	switch key {
	case platform.KeyLeftShift, platform.KeyRightShift:
		return flagShift, true
	case platform.KeyLeftCtrl, platform.KeyRightCtrl:
		return flagControl, true
	case platform.KeyLeftAlt, platform.KeyRightAlt:
		return flagOption, true
	case platform.KeyLeftMeta, platform.KeyRightMeta:
		return flagCommand, true
	}
	return 0, false
}
