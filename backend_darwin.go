//go:build darwin

package rx

import (
	"github.com/emiliancristea/RX-Framework/platform"
	"github.com/emiliancristea/RX-Framework/platform/cocoa"
)

// newNativeBackend returns the Cocoa backend on macOS.
func newNativeBackend() platform.Backend {
	return cocoa.New()
}
