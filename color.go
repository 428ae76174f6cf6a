package rx

import (
	"strconv"
	"strings"

	"github.com/emiliancristea/RX-Framework/platform"
)

// Color is an RGBA color with components in 0..1.
type Color struct {
	R, G, B, A float32
}

// Common colors
var (
	Transparent = Color{}
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Red         = Color{R: 1, A: 1}
	Green       = Color{G: 1, A: 1}
	Blue        = Color{B: 1, A: 1}
	Yellow      = Color{R: 1, G: 1, A: 1}
	Cyan        = Color{G: 1, B: 1, A: 1}
	Magenta     = Color{R: 1, B: 1, A: 1}
	Gray        = Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	LightGray   = Color{R: 0.75, G: 0.75, B: 0.75, A: 1}
	DarkGray    = Color{R: 0.25, G: 0.25, B: 0.25, A: 1}
)

// RGBA creates a color from components in 0..1. Out-of-range values are
// clamped.
func RGBA(r, g, b, a float32) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a)}
}

// RGB creates an opaque color from components in 0..1.
func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1)
}

// RGBA8 creates a color from 8-bit components.
func RGBA8(r, g, b, a uint8) Color {
	return RGBA(float32(r)/255, float32(g)/255, float32(b)/255, float32(a)/255)
}

// RGB8 creates an opaque color from 8-bit components.
func RGB8(r, g, b uint8) Color {
	return RGBA8(r, g, b, 255)
}

// GrayColor creates a grayscale color.
func GrayColor(value float32) Color {
	return RGB(value, value, value)
}

// ColorFromHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (the "#" is
// optional).
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	parse := func(s string) (uint8, error) {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0, platform.DrawingError("invalid hex color " + strconv.Quote(hex))
		}
		return uint8(v), nil
	}

	var r, g, b, a uint8
	var err error
	a = 255
	switch len(hex) {
	case 3:
		if r, err = parse(strings.Repeat(hex[0:1], 2)); err != nil {
			return Color{}, err
		}
		if g, err = parse(strings.Repeat(hex[1:2], 2)); err != nil {
			return Color{}, err
		}
		if b, err = parse(strings.Repeat(hex[2:3], 2)); err != nil {
			return Color{}, err
		}
	case 6, 8:
		if r, err = parse(hex[0:2]); err != nil {
			return Color{}, err
		}
		if g, err = parse(hex[2:4]); err != nil {
			return Color{}, err
		}
		if b, err = parse(hex[4:6]); err != nil {
			return Color{}, err
		}
		if len(hex) == 8 {
			if a, err = parse(hex[6:8]); err != nil {
				return Color{}, err
			}
		}
	default:
		return Color{}, platform.DrawingError("invalid hex color length")
	}
	return RGBA8(r, g, b, a), nil
}

// Blend alpha-blends another color over this one.
func (c Color) Blend(other Color) Color {
	alpha := other.A
	inv := 1 - alpha
	return RGBA(
		c.R*inv+other.R*alpha,
		c.G*inv+other.G*alpha,
		c.B*inv+other.B*alpha,
		max32(c.A, other.A),
	)
}

// Lighten moves the color toward white by a factor in 0..1.
func (c Color) Lighten(factor float32) Color {
	factor = clamp01(factor)
	return RGBA(
		c.R+(1-c.R)*factor,
		c.G+(1-c.G)*factor,
		c.B+(1-c.B)*factor,
		c.A,
	)
}

// Darken moves the color toward black by a factor in 0..1.
func (c Color) Darken(factor float32) Color {
	factor = 1 - clamp01(factor)
	return RGBA(c.R*factor, c.G*factor, c.B*factor, c.A)
}

// WithAlpha returns the color with a replaced alpha channel.
func (c Color) WithAlpha(alpha float32) Color {
	c.A = clamp01(alpha)
	return c
}

// RGBA32 returns the color in the form drawing surfaces consume.
func (c Color) RGBA32() platform.RGBA {
	return platform.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
