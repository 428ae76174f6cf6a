//go:build windows

package win32

import (
	"github.com/lxn/win"

	"github.com/emiliancristea/RX-Framework/platform"
)

// virtualKeys maps the virtual key codes outside the contiguous letter,
// digit and function key ranges. Plain VK_SHIFT, VK_CONTROL and VK_MENU
// arrive on key messages that do not distinguish sides; they map to the
// left variant.
var virtualKeys = map[uintptr]platform.Key{
	win.VK_ESCAPE:   platform.KeyEscape,
	win.VK_TAB:      platform.KeyTab,
	win.VK_SPACE:    platform.KeySpace,
	win.VK_RETURN:   platform.KeyReturn,
	win.VK_BACK:     platform.KeyBackspace,
	win.VK_DELETE:   platform.KeyDelete,
	win.VK_INSERT:   platform.KeyInsert,
	win.VK_HOME:     platform.KeyHome,
	win.VK_END:      platform.KeyEnd,
	win.VK_PRIOR:    platform.KeyPageUp,
	win.VK_NEXT:     platform.KeyPageDown,
	win.VK_LEFT:     platform.KeyLeft,
	win.VK_RIGHT:    platform.KeyRight,
	win.VK_UP:       platform.KeyUp,
	win.VK_DOWN:     platform.KeyDown,
	win.VK_SHIFT:    platform.KeyLeftShift,
	win.VK_LSHIFT:   platform.KeyLeftShift,
	win.VK_RSHIFT:   platform.KeyRightShift,
	win.VK_CONTROL:  platform.KeyLeftCtrl,
	win.VK_LCONTROL: platform.KeyLeftCtrl,
	win.VK_RCONTROL: platform.KeyRightCtrl,
	win.VK_MENU:     platform.KeyLeftAlt,
	win.VK_LMENU:    platform.KeyLeftAlt,
	win.VK_RMENU:    platform.KeyRightAlt,
	win.VK_LWIN:     platform.KeyLeftMeta,
	win.VK_RWIN:     platform.KeyRightMeta,
}

func keyFromVK(vk uintptr) platform.Key {
	switch {
	case vk >= 0x41 && vk <= 0x5A: // A..Z
		return platform.KeyA + platform.Key(vk-0x41)
	case vk >= 0x30 && vk <= 0x39: // 0..9
		return platform.Key0 + platform.Key(vk-0x30)
	case vk >= win.VK_F1 && vk <= win.VK_F12:
		return platform.KeyF1 + platform.Key(vk-win.VK_F1)
	}
	if key, ok := virtualKeys[vk]; ok {
		return key
	}
	return platform.UnknownKey(uint32(vk))
}

// currentMods samples the live keyboard state. Window messages carry no
// modifier snapshot of their own.
func currentMods() platform.Modifiers {
	down := func(vk int32) bool { return win.GetKeyState(vk) < 0 }
	var mods platform.Modifiers
	if down(win.VK_SHIFT) {
		mods |= platform.ModShift
	}
	if down(win.VK_CONTROL) {
		mods |= platform.ModCtrl
	}
	if down(win.VK_MENU) {
		mods |= platform.ModAlt
	}
	if down(win.VK_LWIN) || down(win.VK_RWIN) {
		mods |= platform.ModMeta
	}
	return mods
}
