package rx

import (
	"fmt"

	"github.com/emiliancristea/RX-Framework/platform"
	"github.com/emiliancristea/RX-Framework/platform/headless"
	"github.com/emiliancristea/RX-Framework/platform/terminal"
)

// newBackend selects the platform backend named by the configuration.
// "auto" resolves to the native backend of the build platform.
func newBackend(config Config) (platform.Backend, error) {
	switch config.Backend {
	case "", "auto":
		return newNativeBackend(), nil
	case "headless":
		return headless.New(), nil
	case "terminal":
		return terminal.New(), nil
	default:
		return nil, platform.InvalidOperation(fmt.Sprintf("unknown backend %q", config.Backend))
	}
}
