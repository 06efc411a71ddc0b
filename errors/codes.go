package errors

// ErrorCode identifies the kind of failure.
// Codes are strings so they read well in logs and compare cheaply.
type ErrorCode string

const (
	// Handle errors.

	// CodeOpenFailed indicates a file or directory handle could not be opened.
	// The attempted path is attached as the "path" context field.
	CodeOpenFailed ErrorCode = "OPEN_FAILED"

	// CodeReadFailed indicates an underlying read, seek or directory-read
	// primitive reported a genuine failure (not exhaustion).
	CodeReadFailed ErrorCode = "READ_FAILED"

	// CodeParseFailed indicates a value could not be parsed at the current
	// stream position.
	CodeParseFailed ErrorCode = "PARSE_FAILED"

	// Validation errors.

	// CodeInvalidInput indicates a caller-supplied argument was rejected
	// before any I/O took place.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeNotFound indicates a requested node does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// System errors.

	// CodeUnavailable indicates the backing device or node is temporarily
	// unavailable.
	CodeUnavailable ErrorCode = "UNAVAILABLE"

	// CodeInternal indicates an internal failure, such as a handle that
	// could not be released cleanly.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)
