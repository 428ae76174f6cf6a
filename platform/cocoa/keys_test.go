//go:build darwin

package cocoa

import (
	"testing"

	"github.com/emiliancristea/RX-Framework/platform"
)

func TestKeyFromCode(t *testing.T) {
	tests := []struct {
		code uint16
		want platform.Key
	}{
		{0, platform.KeyA},
		{6, platform.KeyZ},
		{12, platform.KeyQ},
		{18, platform.Key1},
		{29, platform.Key0},
		{36, platform.KeyReturn},
		{49, platform.KeySpace},
		{53, platform.KeyEscape},
		{55, platform.KeyLeftMeta},
		{76, platform.KeyReturn},
		{111, platform.KeyF12},
		{122, platform.KeyF1},
		{123, platform.KeyLeft},
		{126, platform.KeyUp},
	}
	for _, tt := range tests {
		if got := keyFromCode(tt.code); got != tt.want {
			t.Errorf("keyFromCode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestKeyFromCodeUnknown(t *testing.T) {
	key := keyFromCode(200)
	if !key.IsUnknown() {
		t.Fatalf("keyFromCode(200) = %v, want unknown key", key)
	}
	code, ok := key.Code()
	if !ok || code != 200 {
		t.Errorf("Code() = %d, %v, want 200, true", code, ok)
	}
}

func TestModsFromFlags(t *testing.T) {
	flags := uint64(flagShift | flagControl | flagOption | flagCommand)
	want := platform.ModShift | platform.ModCtrl | platform.ModAlt | platform.ModMeta
	if got := modsFromFlags(flags); got != want {
		t.Errorf("modsFromFlags(all) = %v, want %v", got, want)
	}
	if got := modsFromFlags(1 << 16); got != 0 {
		t.Errorf("modsFromFlags(caps lock) = %v, want 0", got)
	}
}

func TestFlagForKey(t *testing.T) {
	tests := []struct {
		key  platform.Key
		want uint64
	}{
		{platform.KeyLeftShift, flagShift},
		{platform.KeyRightShift, flagShift},
		{platform.KeyLeftCtrl, flagControl},
		{platform.KeyLeftAlt, flagOption},
		{platform.KeyRightMeta, flagCommand},
	}
	for _, tt := range tests {
		got, ok := flagForKey(tt.key)
		if !ok || got != tt.want {
			t.Errorf("flagForKey(%v) = %#x, %v, want %#x, true", tt.key, got, ok, tt.want)
		}
	}
	if _, ok := flagForKey(platform.KeyA); ok {
		t.Error("flagForKey(KeyA) reported a modifier flag")
	}
}

func TestButtonForNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want platform.MouseButton
	}{
		{0, platform.MouseButtonLeft},
		{1, platform.MouseButtonRight},
		{2, platform.MouseButtonMiddle},
		{3, platform.OtherMouseButton(4)},
		{4, platform.OtherMouseButton(5)},
	}
	for _, tt := range tests {
		if got := buttonForNumber(tt.n); got != tt.want {
			t.Errorf("buttonForNumber(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}
