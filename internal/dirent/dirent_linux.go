package dirent

import (
	"bytes"
	"encoding/binary"
	"io/fs"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

var (
	headerSize   = int(unsafe.Offsetof(unix.Dirent{}.Name))
	inoOffset    = int(unsafe.Offsetof(unix.Dirent{}.Ino))
	reclenOffset = int(unsafe.Offsetof(unix.Dirent{}.Reclen))
)

// getdents64 records are 8-byte aligned.
const recordAlign = 8

// Stream is an open directory read with getdents64.
// A Stream is not safe for concurrent use.
type Stream struct {
	fd   int
	path string
	buf  []byte
	off  int // next unparsed byte in buf
	end  int // valid bytes in buf
	done bool
}

// Open opens path as a directory stream and sizes its record buffer from
// the filesystem's name length limit.
func Open(path string) (*Stream, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &fs.PathError{Op: "opendir", Path: path, Err: err}
	}

	return &Stream{
		fd:   fd,
		path: path,
		buf:  make([]byte, RecordSize(nameMax(fd))),
	}, nil
}

// nameMax reports f_namelen for the filesystem holding fd, or
// DefaultNameMax when it is unavailable.
func nameMax(fd int) int {
	var st unix.Statfs_t
	if err := unix.Fstatfs(fd, &st); err != nil || st.Namelen <= 0 {
		return DefaultNameMax
	}
	return int(st.Namelen)
}

// Name returns the path given to Open.
func (s *Stream) Name() string {
	return s.path
}

// BufferSize returns the size of the record buffer.
func (s *Stream) BufferSize() int {
	return len(s.buf)
}

// Next returns the next entry name, or "" once the directory is exhausted.
func (s *Stream) Next() (string, error) {
	if s.fd < 0 {
		return "", &fs.PathError{Op: "readdir", Path: s.path, Err: os.ErrClosed}
	}

	for !s.done {
		if s.off >= s.end {
			n, err := unix.Getdents(s.fd, s.buf)
			if err != nil {
				return "", &fs.PathError{Op: "readdir", Path: s.path, Err: err}
			}
			if n <= 0 {
				s.done = true
				break
			}
			s.off, s.end = 0, n
		}

		name, ok, err := s.parse()
		if err != nil {
			return "", err
		}
		if ok {
			return name, nil
		}
	}
	return "", nil
}

// parse consumes one record from the buffer. ok is false for records that
// carry no entry (inode 0).
func (s *Stream) parse() (string, bool, error) {
	rec := s.buf[s.off:s.end]
	if len(rec) < headerSize {
		return "", false, s.corrupt()
	}

	reclen := int(binary.NativeEndian.Uint16(rec[reclenOffset:]))
	if reclen < headerSize || reclen > len(rec) {
		return "", false, s.corrupt()
	}
	s.off += reclen

	if binary.NativeEndian.Uint64(rec[inoOffset:]) == 0 {
		return "", false, nil
	}

	name := rec[headerSize:reclen]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return string(name), true, nil
}

func (s *Stream) corrupt() error {
	s.off = s.end
	return &fs.PathError{Op: "readdir", Path: s.path, Err: unix.EIO}
}

// Close releases the directory descriptor. Closing twice returns an error
// wrapping os.ErrClosed.
func (s *Stream) Close() error {
	if s.fd < 0 {
		return &fs.PathError{Op: "closedir", Path: s.path, Err: os.ErrClosed}
	}
	fd := s.fd
	s.fd = -1
	if err := unix.Close(fd); err != nil {
		return &fs.PathError{Op: "closedir", Path: s.path, Err: err}
	}
	return nil
}
