package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
)

// platformError is the only PlatformError implementation.
// Values are never mutated after construction.
type platformError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]any
	cause          error
}

// Error formats as "[CODE] message" or "[CODE] message: cause".
func (e *platformError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *platformError) Code() ErrorCode {
	return e.code
}

func (e *platformError) Classification() ErrorClassification {
	return e.classification
}

func (e *platformError) Message() string {
	return e.message
}

// Context returns a copy so callers cannot mutate the error.
func (e *platformError) Context() map[string]any {
	if e.context == nil {
		return nil
	}
	return maps.Clone(e.context)
}

func (e *platformError) Unwrap() error {
	return e.cause
}

// with returns a copy of e with extra merged into its context.
func (e *platformError) with(extra map[string]any) *platformError {
	ctx := make(map[string]any, len(e.context)+len(extra))
	maps.Copy(ctx, e.context)
	maps.Copy(ctx, extra)
	return &platformError{
		code:           e.code,
		classification: e.classification,
		message:        e.message,
		context:        ctx,
		cause:          e.cause,
	}
}

// promote returns err as a *platformError. Foreign errors become CodeUnknown
// errors that keep err as their cause.
func promote(err error) *platformError {
	var pe *platformError
	if stderrors.As(err, &pe) {
		return pe
	}
	var other PlatformError
	if stderrors.As(err, &other) {
		return &platformError{
			code:           other.Code(),
			classification: other.Classification(),
			message:        other.Message(),
			context:        other.Context(),
			cause:          other.Unwrap(),
		}
	}
	return &platformError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
