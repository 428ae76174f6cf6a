//go:build linux

package rx

import (
	"github.com/emiliancristea/RX-Framework/platform"
	"github.com/emiliancristea/RX-Framework/platform/x11"
)

// newNativeBackend returns the X11 backend on Linux.
func newNativeBackend() platform.Backend {
	return x11.New()
}
