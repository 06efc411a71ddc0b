package errors

import (
	"fmt"
	"maps"
)

// New creates a PlatformError with the default classification for code.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidInput, "base must be 10 or 16")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: defaultClassification(code),
		message:        message,
	}
}

// Newf is New with a formatted message.
func Newf(code ErrorCode, format string, args ...any) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message, keeping err reachable through
// Unwrap, errors.Is and errors.As.
//
// The classification is taken from err when it is a PlatformError. Otherwise
// a cause reporting Temporary() == true (for example EAGAIN or EINTR) makes the
// result retryable, and anything else falls back to the default for code.
//
// Returns nil if err is nil.
//
// Example:
//
//	if _, err := f.Seek(0, io.SeekStart); err != nil {
//	    return errors.Wrap(err, errors.CodeReadFailed, "rewind failed")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	if err == nil {
		return nil
	}
	return &platformError{
		code:           code,
		classification: classify(code, err),
		message:        message,
		cause:          err,
	}
}

// Wrapf is Wrap with a formatted message. Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...any) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps err and attaches ctx in one step. The map is copied.
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeOpenFailed, "open failed", map[string]any{
//	    "path": path,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]any) PlatformError {
	if err == nil {
		return nil
	}
	return &platformError{
		code:           code,
		classification: classify(code, err),
		message:        message,
		context:        maps.Clone(ctx),
		cause:          err,
	}
}
