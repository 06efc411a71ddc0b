package errors

// WithContext returns a copy of err with key set in its context.
// Existing fields are kept. Errors that are not PlatformErrors become
// CodeUnknown errors wrapping the original.
//
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "path", "/sys/bus/usb/devices/1-1/idVendor")
func WithContext(err error, key string, value any) PlatformError {
	if err == nil {
		return nil
	}
	return promote(err).with(map[string]any{key: value})
}

// WithContextMap merges ctx into err's context; new keys win.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]any) PlatformError {
	if err == nil {
		return nil
	}
	return promote(err).with(ctx)
}

// WithClassification returns a copy of err with its classification replaced.
// Returns nil if err is nil.
//
// Example:
//
//	// a node that vanished with its device will not come back on retry
//	err = errors.WithClassification(err, errors.ClassificationPermanent)
func WithClassification(err error, classification ErrorClassification) PlatformError {
	if err == nil {
		return nil
	}
	pe := promote(err).with(nil)
	pe.classification = classification
	return pe
}
