package rx

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config controls framework-wide behavior. Start from DefaultConfig rather
// than the zero value.
type Config struct {
	// AppName is reported to the platform where it surfaces, such as
	// window class names and desktop integration.
	AppName    string `toml:"app_name"`
	AppVersion string `toml:"app_version"`

	// TargetFPS is the frame cadence the main loop aims for.
	TargetFPS uint32 `toml:"target_fps"`
	VSync     bool   `toml:"vsync"`

	EnablePerformanceMonitoring bool `toml:"enable_performance_monitoring"`
	PerformanceSampleCount      int  `toml:"performance_sample_count"`

	// EventQueueCapacity bounds the event loop's queue; once full, the
	// oldest pending event is dropped for each new one. Zero means
	// unbounded.
	EventQueueCapacity int `toml:"event_queue_capacity"`

	// Backend selects the platform backend: "auto", "headless", or
	// "terminal". Auto picks the native backend for the build platform.
	Backend string `toml:"backend"`
}

// DefaultConfig returns sensible defaults for a desktop application.
func DefaultConfig() Config {
	return Config{
		AppName:                "RX Application",
		AppVersion:             "1.0.0",
		TargetFPS:              60,
		VSync:                  true,
		PerformanceSampleCount: 100,
		Backend:                "auto",
	}
}

// LoadConfig reads a TOML configuration file. A missing file is not an
// error; the defaults are returned so applications run unconfigured.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Apply defaults for empty values
	if config.TargetFPS == 0 {
		config.TargetFPS = 60
	}
	if config.PerformanceSampleCount <= 0 {
		config.PerformanceSampleCount = 100
	}
	if config.Backend == "" {
		config.Backend = "auto"
	}

	return config, nil
}

// SaveConfig writes the configuration to a TOML file.
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
