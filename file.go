package sysfs

import (
	"bufio"
	"io"
	"slices"
	"strconv"

	"github.com/jmgilman/go/sysfs/fs/core"
)

const (
	// DefaultLineSize is the capacity ReadLine uses, including room for a
	// terminator.
	DefaultLineSize = 1024

	// chunkSize is the increment ReadAll grows its result by.
	chunkSize = 4096
)

// File is an open attribute file.
type File struct {
	file   core.File
	r      *bufio.Reader
	path   string
	closed bool
}

// OpenFile opens path for reading.
func OpenFile(path string, opts ...Option) (*File, error) {
	cfg := newConfig(opts)
	f, err := cfg.fs.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	return &File{
		file: f,
		r:    bufio.NewReader(f),
		path: path,
	}, nil
}

// Path returns the path the file was opened with.
func (f *File) Path() string {
	return f.path
}

// ReadLine is ReadLineN with DefaultLineSize.
func (f *File) ReadLine() (string, error) {
	return f.ReadLineN(DefaultLineSize)
}

// ReadLineN reads up to and including the next newline, but no more than
// maxBytes-1 bytes. The newline is kept. Reading at end of file returns an
// error wrapping io.EOF.
func (f *File) ReadLineN(maxBytes int) (string, error) {
	if maxBytes < 2 {
		return "", invalidArgument("max_bytes", maxBytes, "line capacity must be at least 2")
	}
	if f.closed {
		return "", readError(f.path, "readline", core.ErrClosed)
	}

	limit := maxBytes - 1
	line := make([]byte, 0, min(limit, 128))
	for len(line) < limit {
		b, err := f.r.ReadByte()
		if err == io.EOF {
			if len(line) == 0 {
				return "", readError(f.path, "readline", io.EOF)
			}
			break
		}
		if err != nil {
			return "", readError(f.path, "readline", err)
		}
		line = append(line, b)
		if b == '\n' {
			break
		}
	}
	return string(line), nil
}

// ReadAll rewinds the file and reads it to the end. An empty file yields
// an empty, non-nil slice.
func (f *File) ReadAll() ([]byte, error) {
	if f.closed {
		return nil, readError(f.path, "read", core.ErrClosed)
	}
	if _, err := f.file.Seek(0, io.SeekStart); err != nil {
		return nil, readError(f.path, "seek", err)
	}
	f.r.Reset(f.file)

	data := make([]byte, 0, chunkSize)
	for {
		data = slices.Grow(data, chunkSize)
		n, err := io.ReadFull(f.r, data[len(data):len(data)+chunkSize])
		data = data[:len(data)+n]
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return data, nil
		}
		if err != nil {
			return nil, readError(f.path, "read", err)
		}
	}
}

// ReadInt scans one integer in base 10 or 16 from the current position.
// Leading whitespace and a sign are accepted; in base 16 so is a "0x" or
// "0X" prefix. The file is left positioned after the last digit.
func (f *File) ReadInt(base int) (int64, error) {
	if base != 10 && base != 16 {
		return 0, invalidArgument("base", base, "base must be 10 or 16")
	}
	if f.closed {
		return 0, readError(f.path, "read", core.ErrClosed)
	}

	if err := f.skipSpace(); err != nil {
		if err == io.EOF {
			return 0, parseError(f.path, base, nil)
		}
		return 0, readError(f.path, "read", err)
	}

	var tok []byte
	b, err := f.r.ReadByte()
	if err != nil {
		return 0, readError(f.path, "read", err)
	}
	if b == '+' || b == '-' {
		tok = append(tok, b)
	} else {
		_ = f.r.UnreadByte()
	}

	if base == 16 {
		p, err := f.r.Peek(3)
		if err != nil && err != io.EOF {
			return 0, readError(f.path, "read", err)
		}
		if len(p) == 3 && p[0] == '0' && (p[1] == 'x' || p[1] == 'X') && digitValue(p[2]) < 16 {
			_, _ = f.r.Discard(2)
		}
	}

	sign := len(tok)
	for {
		b, err := f.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, readError(f.path, "read", err)
		}
		if digitValue(b) >= base {
			_ = f.r.UnreadByte()
			break
		}
		tok = append(tok, b)
	}
	if len(tok) == sign {
		return 0, parseError(f.path, base, nil)
	}

	v, err := strconv.ParseInt(string(tok), base, 64)
	if err != nil {
		return 0, parseError(f.path, base, err)
	}
	return v, nil
}

// skipSpace consumes ASCII whitespace and stops before the first other
// byte.
func (f *File) skipSpace() error {
	for {
		b, err := f.r.ReadByte()
		if err != nil {
			return err
		}
		switch b {
		case ' ', '\t', '\n', '\v', '\f', '\r':
		default:
			return f.r.UnreadByte()
		}
	}
}

// digitValue returns the value of b as a hexadecimal digit, or 16 when b
// is not one.
func digitValue(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'f':
		return int(b-'a') + 10
	case 'A' <= b && b <= 'F':
		return int(b-'A') + 10
	default:
		return 16
	}
}

// Close releases the file. Calling Close again does nothing.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if err := f.file.Close(); err != nil {
		return closeError(f.path, err)
	}
	return nil
}
