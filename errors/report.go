package errors

import (
	"encoding/json"
)

// Report is a flat, serializable view of an error for callers that log
// or export diagnostics, for example a device enumerator recording why an
// attribute could not be read.
type Report struct {
	Code           string         `json:"code"`
	Message        string         `json:"message"`
	Classification string         `json:"classification"`
	Context        map[string]any `json:"context,omitempty"`

	// Cause is the text of the wrapped error, such as the errno reported
	// by the kernel.
	Cause string `json:"cause,omitempty"`
}

// ToReport converts err into a Report. Returns nil if err is nil.
//
// Errors that are not PlatformErrors are reported as CodeUnknown with
// their Error text as the message.
//
// Example:
//
//	if _, err := sysfs.ReadHex(path); err != nil {
//	    data, _ := json.Marshal(errors.ToReport(err))
//	    log.Printf("skipping device: %s", data)
//	}
func ToReport(err error) *Report {
	if err == nil {
		return nil
	}

	r := &Report{
		Code:           string(GetCode(err)),
		Message:        err.Error(),
		Classification: string(GetClassification(err)),
	}

	var pe PlatformError
	if As(err, &pe) {
		r.Message = pe.Message()
		r.Context = pe.Context()
		if cause := pe.Unwrap(); cause != nil {
			r.Cause = cause.Error()
		}
	}
	return r
}

// MarshalJSON encodes the error as its Report.
func (e *platformError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(ToReport(e))
	if err != nil {
		// context values are caller supplied and may not encode
		return nil, Wrap(err, CodeInternal, "cannot marshal error report")
	}
	return data, nil
}
