// Package platform defines the contract between the framework and the
// native windowing systems: the Backend interface, the raw event model,
// window parameters, and keyboard/mouse types. Implementations live in the
// subpackages (x11, win32, cocoa, terminal, headless); the root package
// selects one for the running OS.
package platform

import "runtime"

// Platform identifies the operating system the framework is running on.
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformLinux   Platform = "linux"
	PlatformMacOS   Platform = "darwin"
	PlatformUnknown Platform = "unknown"
)

// Current returns the platform the framework is running on.
func Current() Platform {
	switch runtime.GOOS {
	case "windows":
		return PlatformWindows
	case "linux":
		return PlatformLinux
	case "darwin":
		return PlatformMacOS
	default:
		return PlatformUnknown
	}
}

// Name returns a human-readable name for the current platform.
func Name() string {
	switch Current() {
	case PlatformWindows:
		return "Windows"
	case PlatformLinux:
		return "Unix/Linux"
	case PlatformMacOS:
		return "macOS"
	default:
		return "unknown"
	}
}

// IsWindows returns true if running on Windows
func IsWindows() bool {
	return Current() == PlatformWindows
}

// IsLinux returns true if running on Linux
func IsLinux() bool {
	return Current() == PlatformLinux
}

// IsMacOS returns true if running on macOS
func IsMacOS() bool {
	return Current() == PlatformMacOS
}

// Capabilities describes what the current windowing system supports.
type Capabilities struct {
	TransparentWindows bool
	WindowDecorations  bool
	AlwaysOnTop        bool
	Fullscreen         bool
	MultiWindow        bool
	OpenGL             bool
	Vulkan             bool
	Metal              bool
}

// CurrentCapabilities returns the capability set of the running OS.
func CurrentCapabilities() Capabilities {
	switch Current() {
	case PlatformMacOS:
		return Capabilities{
			TransparentWindows: true,
			WindowDecorations:  true,
			AlwaysOnTop:        true,
			Fullscreen:         true,
			MultiWindow:        true,
			OpenGL:             true,
			Vulkan:             false,
			Metal:              true,
		}
	default:
		// Windows and Linux expose the same surface here.
		return Capabilities{
			TransparentWindows: true,
			WindowDecorations:  true,
			AlwaysOnTop:        true,
			Fullscreen:         true,
			MultiWindow:        true,
			OpenGL:             true,
			Vulkan:             true,
			Metal:              false,
		}
	}
}

// SupportsMultiWindow returns true if the platform supports multiple windows
func SupportsMultiWindow() bool {
	return CurrentCapabilities().MultiWindow
}

// SupportsTransparency returns true if the platform supports transparent windows
func SupportsTransparency() bool {
	return CurrentCapabilities().TransparentWindows
}
