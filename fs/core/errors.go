package core

import (
	"errors"
	"io/fs"
	"syscall"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrClosed is returned when a handle is used after Close.
	// Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed

	// ErrNotDir is returned when OpenDir is called on something that is not
	// a directory. It is the ENOTDIR errno so that native and in-memory
	// providers report the same error.
	ErrNotDir error = syscall.ENOTDIR

	// ErrUnsupported is returned when a provider cannot perform an operation.
	ErrUnsupported = errors.New("operation not supported")
)

// PathError wraps err in an *fs.PathError for op and path. Errors that
// already are *fs.PathError are returned unchanged. Returns nil if err is nil.
func PathError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return err
	}
	return &fs.PathError{Op: op, Path: path, Err: err}
}
