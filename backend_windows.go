//go:build windows

package rx

import (
	"github.com/emiliancristea/RX-Framework/platform"
	"github.com/emiliancristea/RX-Framework/platform/win32"
)

// newNativeBackend returns the Win32 backend on Windows.
func newNativeBackend() platform.Backend {
	return win32.New()
}
