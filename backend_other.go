//go:build !linux && !windows && !darwin

package rx

import (
	"github.com/emiliancristea/RX-Framework/platform"
	"github.com/emiliancristea/RX-Framework/platform/headless"
)

// newNativeBackend falls back to the headless backend on platforms
// without a native windowing integration.
func newNativeBackend() platform.Backend {
	return headless.New()
}
