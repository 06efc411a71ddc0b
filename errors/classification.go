package errors

import stderrors "errors"

// ErrorClassification tells a caller whether retrying may help.
// Nothing in this module retries; the classification is advice for the
// enumeration layer above it.
type ErrorClassification string

const (
	// ClassificationRetryable marks transient failures such as EAGAIN.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent marks failures that will repeat, such as a
	// missing node or an unparsable value.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable reports whether c is ClassificationRetryable.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeUnavailable: ClassificationRetryable,

	CodeOpenFailed:   ClassificationPermanent,
	CodeReadFailed:   ClassificationPermanent,
	CodeParseFailed:  ClassificationPermanent,
	CodeInvalidInput: ClassificationPermanent,
	CodeNotFound:     ClassificationPermanent,
	CodeInternal:     ClassificationPermanent,
	CodeUnknown:      ClassificationPermanent,
}

// defaultClassification returns the mapping for code, or permanent for
// unmapped codes.
func defaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}

// temporary is implemented by syscall.Errno and most net errors.
type temporary interface {
	Temporary() bool
}

// classify picks the classification for a wrapped cause.
func classify(code ErrorCode, cause error) ErrorClassification {
	var pe PlatformError
	if stderrors.As(cause, &pe) {
		return pe.Classification()
	}
	var tmp temporary
	if stderrors.As(cause, &tmp) && tmp.Temporary() {
		return ClassificationRetryable
	}
	return defaultClassification(code)
}
