package sysfs

import (
	"io"
	"strings"
)

// ReadInt reads one integer in base 10 or 16 from the file at path.
func ReadInt(path string, base int, opts ...Option) (v int64, err error) {
	f, err := OpenFile(path, opts...)
	if err != nil {
		return 0, err
	}
	defer closeInto(f, &err)

	return f.ReadInt(base)
}

// ReadHex reads one hexadecimal integer from the file at path.
func ReadHex(path string, opts ...Option) (int64, error) {
	return ReadInt(path, 16, opts...)
}

// ReadString reads the first line of the file at path with trailing
// whitespace removed.
func ReadString(path string, opts ...Option) (s string, err error) {
	f, err := OpenFile(path, opts...)
	if err != nil {
		return "", err
	}
	defer closeInto(f, &err)

	line, err := f.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, " \t\r\n\f"), nil
}

// ReadBytes reads the whole file at path.
func ReadBytes(path string, opts ...Option) (data []byte, err error) {
	f, err := OpenFile(path, opts...)
	if err != nil {
		return nil, err
	}
	defer closeInto(f, &err)

	return f.ReadAll()
}

// ReadNames returns the entry names of the directory at path, including
// "." and "..", in the order the filesystem yields them.
func ReadNames(path string, opts ...Option) (names []string, err error) {
	d, err := OpenDirectory(path, opts...)
	if err != nil {
		return nil, err
	}
	defer closeInto(d, &err)

	for {
		name, err := d.Next()
		if err != nil {
			return nil, err
		}
		if name == "" {
			return names, nil
		}
		names = append(names, name)
	}
}

// closeInto closes c and reports its error through err unless err is
// already set.
func closeInto(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
