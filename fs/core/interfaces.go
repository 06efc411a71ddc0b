package core

import (
	"io"
	"io/fs"
)

// FSType identifies the kind of backend behind an FS.
type FSType int

const (
	// FSTypeUnknown indicates the backend is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates the host filesystem (sysfs, procfs, disk).
	FSTypeLocal
	// FSTypeMemory indicates an in-memory tree, typically a test fixture.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS opens pseudo-files and directory streams by path.
//
// Providers resolve names against their own root. Errors returned by Open
// and OpenDir should be *fs.PathError values so that errors.Is works with
// ErrNotExist and ErrPermission.
type FS interface {
	// Open opens the named file for reading.
	// The returned File must be closed by the caller.
	Open(name string) (File, error)

	// OpenDir opens the named directory as an entry stream.
	// Opening something that is not a directory must fail.
	// The returned Dir must be closed by the caller.
	OpenDir(name string) (Dir, error)

	// Type returns the backend type.
	Type() FSType
}

// File is an open, seekable, read-only handle.
// File handles are not safe for concurrent use.
type File interface {
	io.Reader
	io.Seeker
	io.Closer

	// Name returns the name as given to Open.
	Name() string
}

// Dir is an open directory stream.
//
// Next returns entry names one at a time in the order the backend yields
// them. The names "." and ".." are included. Next returns "" with a nil error
// once the stream is exhausted and keeps doing so on later calls.
type Dir interface {
	io.Closer

	// Next returns the next entry name, or "" at end of directory.
	Next() (string, error)

	// Name returns the name as given to OpenDir.
	Name() string
}

// WriteFS seeds a provider with content. It exists for building fixture
// trees; nothing in the read path depends on it.
type WriteFS interface {
	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string, perm fs.FileMode) error

	// WriteFile creates or truncates name and writes data to it.
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// ReadWriteFS is an FS that can also be seeded.
type ReadWriteFS interface {
	FS
	WriteFS
}
