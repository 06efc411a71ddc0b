package errors

// PlatformError is the error interface returned by this module.
//
// It carries a code for categorization, a retry classification for callers
// that implement their own retry policy, and a context map holding
// diagnostics such as the path that failed. It stays compatible with
// errors.Is, errors.As and errors.Unwrap.
type PlatformError interface {
	error

	// Code returns the error code.
	Code() ErrorCode

	// Classification reports whether retrying the operation may succeed.
	Classification() ErrorClassification

	// Message returns the message without the cause.
	Message() string

	// Context returns a copy of the attached metadata, or nil if none.
	Context() map[string]any

	// Unwrap returns the cause, or nil.
	Unwrap() error
}
