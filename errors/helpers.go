package errors

import (
	stderrors "errors"
)

// Is is errors.Is from the standard library.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As is errors.As from the standard library.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// GetCode returns the code of the outermost PlatformError in err's chain,
// or CodeUnknown.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeOpenFailed {
//	    // the attribute is not exposed by this device
//	}
func GetCode(err error) ErrorCode {
	var pe PlatformError
	if err != nil && stderrors.As(err, &pe) {
		return pe.Code()
	}
	return CodeUnknown
}

// GetClassification returns the classification of the outermost
// PlatformError in err's chain, or ClassificationPermanent.
func GetClassification(err error) ErrorClassification {
	var pe PlatformError
	if err != nil && stderrors.As(err, &pe) {
		return pe.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable reports whether err is classified as retryable.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}

// ContextValue looks up key in the context of the outermost PlatformError
// in err's chain.
//
// Example:
//
//	if path, ok := errors.ContextValue(err, "path"); ok {
//	    log.Printf("cannot read %v", path)
//	}
func ContextValue(err error, key string) (any, bool) {
	var pe PlatformError
	if err == nil || !stderrors.As(err, &pe) {
		return nil, false
	}
	v, ok := pe.Context()[key]
	return v, ok
}
