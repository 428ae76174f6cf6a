package platform

import (
	"image"

	"github.com/kbinani/screenshot"
)

// Display describes one active display.
type Display struct {
	Index   int
	Bounds  image.Rectangle
	Primary bool
}

// Displays enumerates the active displays. Display 0 is the primary one.
// The result is empty in headless sessions.
func Displays() []Display {
	n := screenshot.NumActiveDisplays()
	out := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Display{
			Index:   i,
			Bounds:  screenshot.GetDisplayBounds(i),
			Primary: i == 0,
		})
	}
	return out
}

// PrimaryDisplay returns the primary display. The second result is false
// when no display is active.
func PrimaryDisplay() (Display, bool) {
	if screenshot.NumActiveDisplays() == 0 {
		return Display{}, false
	}
	return Display{Index: 0, Bounds: screenshot.GetDisplayBounds(0), Primary: true}, true
}

// CenterOn returns the position that centers a window of the given size on
// the display.
func (d Display) CenterOn(width, height uint32) Point {
	return Point{
		X: int32(d.Bounds.Min.X) + int32(d.Bounds.Dx()-int(width))/2,
		Y: int32(d.Bounds.Min.Y) + int32(d.Bounds.Dy()-int(height))/2,
	}
}
