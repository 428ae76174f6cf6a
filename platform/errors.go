package platform

import (
	"errors"
	"fmt"
)

// ErrorKind classifies framework errors.
type ErrorKind uint8

const (
	ErrPlatformInit ErrorKind = iota + 1
	ErrWindow
	ErrEvent
	ErrDrawing
	ErrWidget
	ErrLayout
	ErrResource
	ErrInvalidOperation
	ErrFramework
	ErrIO
	ErrPlatformSpecific
)

// Category returns the human-readable category name for the kind.
func (k ErrorKind) Category() string {
	switch k {
	case ErrPlatformInit:
		return "Platform Initialization"
	case ErrWindow:
		return "Window"
	case ErrEvent:
		return "Event System"
	case ErrDrawing:
		return "Drawing"
	case ErrWidget:
		return "Widget"
	case ErrLayout:
		return "Layout"
	case ErrResource:
		return "Resource"
	case ErrInvalidOperation:
		return "Invalid Operation"
	case ErrFramework:
		return "Framework"
	case ErrIO:
		return "I/O"
	case ErrPlatformSpecific:
		return "Platform Specific"
	}
	return "Unknown"
}

// Error is the framework error type used across every layer.
type Error struct {
	Kind    ErrorKind
	Message string

	// Platform and Code are set for ErrPlatformSpecific errors.
	Platform string
	Code     int32

	// Err is the wrapped cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	switch e.Kind {
	case ErrPlatformInit:
		return "platform initialization failed: " + msg
	case ErrWindow:
		return "window error: " + msg
	case ErrEvent:
		return "event system error: " + msg
	case ErrDrawing:
		return "drawing error: " + msg
	case ErrWidget:
		return "widget error: " + msg
	case ErrLayout:
		return "layout error: " + msg
	case ErrResource:
		return "resource error: " + msg
	case ErrInvalidOperation:
		return "invalid operation: " + msg
	case ErrFramework:
		return "framework error: " + msg
	case ErrIO:
		return "i/o error: " + msg
	case ErrPlatformSpecific:
		return fmt.Sprintf("platform error (%s): %s (code %d)", e.Platform, msg, e.Code)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Recoverable reports whether the application can reasonably continue after
// this error. Platform initialization and internal framework failures are
// fatal. Platform-specific errors with negative codes are fatal.
func (e *Error) Recoverable() bool {
	switch e.Kind {
	case ErrPlatformInit, ErrFramework:
		return false
	case ErrPlatformSpecific:
		return e.Code >= 0
	}
	return true
}

// PlatformInitError returns a fatal platform initialization error.
func PlatformInitError(message string) *Error {
	return &Error{Kind: ErrPlatformInit, Message: message}
}

// WindowError returns a window creation or manipulation error.
func WindowError(message string) *Error {
	return &Error{Kind: ErrWindow, Message: message}
}

// EventError returns an event system error.
func EventError(message string) *Error {
	return &Error{Kind: ErrEvent, Message: message}
}

// DrawingError returns a drawing or rendering error.
func DrawingError(message string) *Error {
	return &Error{Kind: ErrDrawing, Message: message}
}

// WidgetError returns a widget-related error.
func WidgetError(message string) *Error {
	return &Error{Kind: ErrWidget, Message: message}
}

// LayoutError returns a layout computation error.
func LayoutError(message string) *Error {
	return &Error{Kind: ErrLayout, Message: message}
}

// ResourceError returns a resource loading error.
func ResourceError(message string) *Error {
	return &Error{Kind: ErrResource, Message: message}
}

// InvalidOperation returns an invalid operation or state error.
func InvalidOperation(message string) *Error {
	return &Error{Kind: ErrInvalidOperation, Message: message}
}

// FrameworkError returns a fatal internal framework error.
func FrameworkError(message string) *Error {
	return &Error{Kind: ErrFramework, Message: message}
}

// IOError wraps an I/O failure.
func IOError(err error) *Error {
	return &Error{Kind: ErrIO, Err: err}
}

// PlatformSpecificError returns an error carrying a native error code.
func PlatformSpecificError(platform string, code int32, message string) *Error {
	return &Error{Kind: ErrPlatformSpecific, Platform: platform, Code: code, Message: message}
}

// WrapError attaches a cause to a kinded error.
func WrapError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// IsKind reports whether err is or wraps a framework error of the given
// kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
