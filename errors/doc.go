// Package errors provides the structured error type used across the sysfs
// module.
//
// Every failure is a PlatformError carrying an ErrorCode, a retry
// classification and optional context metadata. The type stays compatible
// with the standard library (errors.Is, errors.As, errors.Unwrap), so a
// caller can still ask whether an open failed because the node is missing:
//
//	v, err := sysfs.ReadHex("/sys/bus/usb/devices/1-1/idVendor")
//	if errors.GetCode(err) == errors.CodeOpenFailed && errors.Is(err, fs.ErrNotExist) {
//	    // device has no such attribute
//	}
//
// # Error Codes
//
//   - CodeOpenFailed: a file or directory could not be opened (context "path")
//   - CodeReadFailed: a read, seek or directory read failed (context "path", "op")
//   - CodeParseFailed: no integer at the current position (context "path", "base")
//   - CodeInvalidInput: an argument was rejected before any I/O
//   - CodeNotFound, CodeUnavailable, CodeInternal, CodeUnknown
//
// # Classification
//
// Nothing in this module retries. Errors are classified so that the layer
// above can decide: a wrapped cause that reports Temporary() (EAGAIN, EINTR)
// yields a retryable error, a wrapped PlatformError keeps its classification,
// and everything else takes the default for its code. WithClassification
// overrides the result.
//
// # Context Metadata
//
//	err := errors.New(errors.CodeParseFailed, "no integer at current position")
//	err = errors.WithContextMap(err, map[string]any{
//	    "path": "/sys/bus/usb/devices/1-1/bcdDevice",
//	    "base": 16,
//	})
//
//	if p, ok := errors.ContextValue(err, "path"); ok {
//	    fmt.Println(p)
//	}
//
// Errors are immutable: WithContext, WithContextMap and WithClassification
// return new values and Context returns a copy.
//
// # Reporting
//
// ToReport flattens an error into a Report with its code, message,
// classification, context and cause text. PlatformErrors also marshal to
// that shape with encoding/json.
package errors
