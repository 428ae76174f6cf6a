package rx

import "github.com/emiliancristea/RX-Framework/platform"

// Error is the framework's typed error. This is a re-export of
// platform.Error for consumer convenience.
type Error = platform.Error

// ErrorKind classifies framework errors. This is a re-export of
// platform.ErrorKind for consumer convenience.
type ErrorKind = platform.ErrorKind

// Error kinds re-exported from the platform package.
const (
	ErrPlatformInit     = platform.ErrPlatformInit
	ErrWindow           = platform.ErrWindow
	ErrEvent            = platform.ErrEvent
	ErrDrawing          = platform.ErrDrawing
	ErrWidget           = platform.ErrWidget
	ErrLayout           = platform.ErrLayout
	ErrResource         = platform.ErrResource
	ErrInvalidOperation = platform.ErrInvalidOperation
	ErrFramework        = platform.ErrFramework
	ErrIO               = platform.ErrIO
	ErrPlatformSpecific = platform.ErrPlatformSpecific
)

// IsKind reports whether err is a framework error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return platform.IsKind(err, kind)
}
