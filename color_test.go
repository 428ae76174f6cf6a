package rx

import (
	"math"
	"testing"
)

func colorApprox(a, b Color) bool {
	const eps = 1.0 / 255
	close := func(x, y float32) bool {
		return math.Abs(float64(x-y)) < eps
	}
	return close(a.R, b.R) && close(a.G, b.G) && close(a.B, b.B) && close(a.A, b.A)
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    Color
		wantErr bool
	}{
		{"six digits", "#FF8000", RGB8(255, 128, 0), false},
		{"without hash", "ff8000", RGB8(255, 128, 0), false},
		{"three digits", "#F80", RGB8(255, 136, 0), false},
		{"eight digits", "#FF800080", RGBA8(255, 128, 0, 128), false},
		{"bad length", "#FF80", Color{}, true},
		{"bad digit", "#GG0000", Color{}, true},
		{"empty", "", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ColorFromHex(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ColorFromHex(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			}
			if !tt.wantErr && !colorApprox(got, tt.want) {
				t.Errorf("ColorFromHex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestColorClamping(t *testing.T) {
	c := RGBA(2, -1, 0.5, 3)
	if c != (Color{R: 1, G: 0, B: 0.5, A: 1}) {
		t.Errorf("RGBA clamped to %v", c)
	}
}

func TestColorBlend(t *testing.T) {
	// Blending an opaque color replaces the base entirely.
	if got := Red.Blend(Blue); !colorApprox(got, Blue) {
		t.Errorf("opaque blend = %v, want %v", got, Blue)
	}
	// A half-transparent white over black gives mid gray.
	got := Black.Blend(White.WithAlpha(0.5))
	if !colorApprox(got, Color{R: 0.5, G: 0.5, B: 0.5, A: 1}) {
		t.Errorf("half blend = %v, want mid gray", got)
	}
	// A fully transparent overlay changes nothing.
	if got := Red.Blend(Blue.WithAlpha(0)); !colorApprox(got, Red) {
		t.Errorf("transparent blend = %v, want %v", got, Red)
	}
}

func TestColorLightenDarken(t *testing.T) {
	if got := Black.Lighten(1); !colorApprox(got, White.WithAlpha(1)) {
		t.Errorf("Black.Lighten(1) = %v, want white", got)
	}
	if got := White.Darken(1); !colorApprox(got, Color{A: 1}) {
		t.Errorf("White.Darken(1) = %v, want black", got)
	}
	if got := Gray.Lighten(0); !colorApprox(got, Gray) {
		t.Errorf("Lighten(0) = %v, want unchanged", got)
	}
	half := Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if got := White.Darken(0.5); !colorApprox(got, half) {
		t.Errorf("White.Darken(0.5) = %v, want %v", got, half)
	}

	// Alpha is untouched by both.
	base := Red.WithAlpha(0.3)
	if got := base.Lighten(0.5); !colorApprox(Color{A: got.A}, Color{A: 0.3}) {
		t.Errorf("Lighten changed alpha to %v", got.A)
	}
}

func TestColorRGBA32(t *testing.T) {
	rgba := Magenta.RGBA32()
	if rgba.R != 1 || rgba.G != 0 || rgba.B != 1 || rgba.A != 1 {
		t.Errorf("RGBA32 = %v, want (1, 0, 1, 1)", rgba)
	}
}

func TestGrayColor(t *testing.T) {
	if got := GrayColor(0.25); !colorApprox(got, DarkGray) {
		t.Errorf("GrayColor(0.25) = %v, want %v", got, DarkGray)
	}
}
