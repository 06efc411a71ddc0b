package sysfs

import (
	"fmt"

	"github.com/jmgilman/go/sysfs/errors"
)

func openError(path string, err error) error {
	return errors.WrapWithContext(err, errors.CodeOpenFailed, "cannot open "+path, map[string]any{
		"path": path,
	})
}

func readError(path, op string, err error) error {
	return errors.WrapWithContext(err, errors.CodeReadFailed, op+" "+path, map[string]any{
		"path": path,
		"op":   op,
	})
}

// parseError reports a failed integer scan. err is the strconv error when
// digits were found but did not fit, nil when there were no digits.
func parseError(path string, base int, err error) error {
	ctx := map[string]any{
		"path": path,
		"base": base,
	}
	if err == nil {
		return errors.WithContextMap(
			errors.Newf(errors.CodeParseFailed, "no base %d integer in %s", base, path), ctx)
	}
	return errors.WrapWithContext(err, errors.CodeParseFailed,
		fmt.Sprintf("cannot parse base %d integer in %s", base, path), ctx)
}

func invalidArgument(key string, value any, message string) error {
	return errors.WithContext(errors.New(errors.CodeInvalidInput, message), key, value)
}

func closeError(path string, err error) error {
	return errors.WrapWithContext(err, errors.CodeInternal, "cannot close "+path, map[string]any{
		"path": path,
	})
}
