package sysfs

import (
	"github.com/jmgilman/go/sysfs/fs/core"
)

// Directory is an open directory stream.
type Directory struct {
	dir    core.Dir
	path   string
	done   bool
	closed bool
}

// OpenDirectory opens path as a directory stream. It fails when path does
// not exist or is not a directory.
func OpenDirectory(path string, opts ...Option) (*Directory, error) {
	cfg := newConfig(opts)
	d, err := cfg.fs.OpenDir(path)
	if err != nil {
		return nil, openError(path, err)
	}
	return &Directory{dir: d, path: path}, nil
}

// Path returns the path the directory was opened with.
func (d *Directory) Path() string {
	return d.path
}

// Next returns the next entry name in the order the filesystem yields
// them, or "" at the end of the directory. "." and ".." are included.
// Once "" has been returned, later calls return "" without reading.
func (d *Directory) Next() (string, error) {
	if d.closed {
		return "", readError(d.path, "readdir", core.ErrClosed)
	}
	if d.done {
		return "", nil
	}
	name, err := d.dir.Next()
	if err != nil {
		return "", readError(d.path, "readdir", err)
	}
	if name == "" {
		d.done = true
	}
	return name, nil
}

// Close releases the stream. Calling Close again does nothing.
func (d *Directory) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if err := d.dir.Close(); err != nil {
		return closeError(d.path, err)
	}
	return nil
}
