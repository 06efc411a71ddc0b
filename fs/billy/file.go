package billy

import (
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/sysfs/fs/core"
)

// File wraps billy.File to implement core.File.
// It keeps the name given to Open since billy.File.Name() differs between
// backends.
type File struct {
	file billy.File
	name string
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Close implements io.Closer.
func (f *File) Close() error {
	return f.file.Close()
}

// Name returns the name provided to Open.
func (f *File) Name() string {
	return f.name
}

// memDir streams a directory listing captured at open time.
type memDir struct {
	name   string
	names  []string
	closed bool
}

func (d *memDir) Next() (string, error) {
	if d.closed {
		return "", core.PathError("readdir", d.name, os.ErrClosed)
	}
	if len(d.names) == 0 {
		return "", nil
	}
	next := d.names[0]
	d.names = d.names[1:]
	return next, nil
}

func (d *memDir) Name() string {
	return d.name
}

func (d *memDir) Close() error {
	if d.closed {
		return core.PathError("closedir", d.name, os.ErrClosed)
	}
	d.closed = true
	d.names = nil
	return nil
}

// Compile-time interface checks.
var (
	_ core.File = (*File)(nil)
	_ io.Seeker = (*File)(nil)
	_ core.Dir  = (*memDir)(nil)
)
