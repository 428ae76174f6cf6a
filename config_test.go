package rx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.AppName != "RX Application" {
		t.Errorf("AppName = %q, want %q", config.AppName, "RX Application")
	}
	if config.AppVersion != "1.0.0" {
		t.Errorf("AppVersion = %q, want %q", config.AppVersion, "1.0.0")
	}
	if config.TargetFPS != 60 {
		t.Errorf("TargetFPS = %d, want 60", config.TargetFPS)
	}
	if !config.VSync {
		t.Error("VSync = false, want true")
	}
	if config.EnablePerformanceMonitoring {
		t.Error("EnablePerformanceMonitoring = true, want false")
	}
	if config.PerformanceSampleCount != 100 {
		t.Errorf("PerformanceSampleCount = %d, want 100", config.PerformanceSampleCount)
	}
	if config.EventQueueCapacity != 0 {
		t.Errorf("EventQueueCapacity = %d, want 0", config.EventQueueCapacity)
	}
	if config.Backend != "auto" {
		t.Errorf("Backend = %q, want %q", config.Backend, "auto")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rx.toml")

	saved := Config{
		AppName:                     "Trip",
		AppVersion:                  "2.3.4",
		TargetFPS:                   144,
		VSync:                       false,
		EnablePerformanceMonitoring: true,
		PerformanceSampleCount:      32,
		EventQueueCapacity:          256,
		Backend:                     "headless",
	}
	if err := SaveConfig(path, saved); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if loaded != saved {
		t.Errorf("LoadConfig() = %+v, want %+v", loaded, saved)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.toml")

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil for missing file", err)
	}
	if config != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults", config)
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("app_name = [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() error = nil, want parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("LoadConfig() error = %v, want parse failure", err)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	// Fields absent from the file keep their defaults.
	path := filepath.Join(t.TempDir(), "partial.toml")
	if err := os.WriteFile(path, []byte("app_name = \"Partial\"\ntarget_fps = 30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.AppName != "Partial" {
		t.Errorf("AppName = %q, want %q", config.AppName, "Partial")
	}
	if config.TargetFPS != 30 {
		t.Errorf("TargetFPS = %d, want 30", config.TargetFPS)
	}
	if config.AppVersion != "1.0.0" {
		t.Errorf("AppVersion = %q, want default %q", config.AppVersion, "1.0.0")
	}
	if config.PerformanceSampleCount != 100 {
		t.Errorf("PerformanceSampleCount = %d, want default 100", config.PerformanceSampleCount)
	}
}

func TestLoadConfigNormalizesZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zeros.toml")
	content := "target_fps = 0\nperformance_sample_count = -5\nbackend = \"\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.TargetFPS != 60 {
		t.Errorf("TargetFPS = %d, want 60 after normalization", config.TargetFPS)
	}
	if config.PerformanceSampleCount != 100 {
		t.Errorf("PerformanceSampleCount = %d, want 100 after normalization", config.PerformanceSampleCount)
	}
	if config.Backend != "auto" {
		t.Errorf("Backend = %q, want %q after normalization", config.Backend, "auto")
	}
}
