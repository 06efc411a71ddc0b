//go:build !linux

package dirent

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"syscall"
)

// Without a portable raw record format the header size is an estimate
// matching the Linux layout; it only affects BufferSize.
const (
	headerSize  = 19
	recordAlign = 8
)

// Stream is an open directory read through os.File.Readdirnames.
// A Stream is not safe for concurrent use.
type Stream struct {
	f      *os.File
	path   string
	size   int
	dots   []string
	done   bool
	closed bool
}

// Open opens path as a directory stream.
func Open(path string) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &fs.PathError{Op: "opendir", Path: path, Err: unwrapPath(err)}
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, &fs.PathError{Op: "opendir", Path: path, Err: unwrapPath(err)}
	}
	if !info.IsDir() {
		_ = f.Close()
		return nil, &fs.PathError{Op: "opendir", Path: path, Err: syscall.ENOTDIR}
	}

	return &Stream{
		f:    f,
		path: path,
		size: RecordSize(DefaultNameMax),
		dots: []string{".", ".."},
	}, nil
}

func unwrapPath(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

// Name returns the path given to Open.
func (s *Stream) Name() string {
	return s.path
}

// BufferSize returns the nominal record size for this stream.
func (s *Stream) BufferSize() int {
	return s.size
}

// Next returns the next entry name, or "" once the directory is exhausted.
// Readdirnames omits "." and "..", so they are yielded first.
func (s *Stream) Next() (string, error) {
	if s.closed {
		return "", &fs.PathError{Op: "readdir", Path: s.path, Err: os.ErrClosed}
	}
	if len(s.dots) > 0 {
		name := s.dots[0]
		s.dots = s.dots[1:]
		return name, nil
	}
	if s.done {
		return "", nil
	}

	names, err := s.f.Readdirnames(1)
	if errors.Is(err, io.EOF) || (err == nil && len(names) == 0) {
		s.done = true
		return "", nil
	}
	if err != nil {
		return "", &fs.PathError{Op: "readdir", Path: s.path, Err: unwrapPath(err)}
	}
	return names[0], nil
}

// Close releases the directory handle. Closing twice returns an error
// wrapping os.ErrClosed.
func (s *Stream) Close() error {
	if s.closed {
		return &fs.PathError{Op: "closedir", Path: s.path, Err: os.ErrClosed}
	}
	s.closed = true
	if err := s.f.Close(); err != nil {
		return &fs.PathError{Op: "closedir", Path: s.path, Err: unwrapPath(err)}
	}
	return nil
}
