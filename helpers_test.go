package sysfs

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/sysfs/fs/billy"
	"github.com/jmgilman/go/sysfs/fs/core"
)

// newFixture returns an in-memory tree holding files, keyed by path
// relative to "/".
func newFixture(t *testing.T, files map[string]string) *billy.MemoryFS {
	t.Helper()
	tree := fstest.MapFS{}
	for name, data := range files {
		tree[name] = &fstest.MapFile{Data: []byte(data), Mode: 0o444}
	}
	mfs := billy.NewMemory()
	require.NoError(t, core.CopyFS(tree, mfs, ".", "/"))
	return mfs
}

// countingFS records how handles are used and can inject failures.
type countingFS struct {
	core.FS

	opened int
	closed int
	reads  int

	readErr  error
	nextErr  error
	closeErr error
}

func (c *countingFS) Open(name string) (core.File, error) {
	f, err := c.FS.Open(name)
	if err != nil {
		return nil, err
	}
	c.opened++
	return &countingFile{File: f, fs: c}, nil
}

func (c *countingFS) OpenDir(name string) (core.Dir, error) {
	d, err := c.FS.OpenDir(name)
	if err != nil {
		return nil, err
	}
	c.opened++
	return &countingDir{Dir: d, fs: c}, nil
}

type countingFile struct {
	core.File
	fs *countingFS
}

func (f *countingFile) Read(p []byte) (int, error) {
	f.fs.reads++
	if f.fs.readErr != nil {
		return 0, f.fs.readErr
	}
	return f.File.Read(p)
}

func (f *countingFile) Close() error {
	f.fs.closed++
	if err := f.File.Close(); err != nil {
		return err
	}
	return f.fs.closeErr
}

type countingDir struct {
	core.Dir
	fs *countingFS
}

func (d *countingDir) Next() (string, error) {
	d.fs.reads++
	if d.fs.nextErr != nil {
		return "", d.fs.nextErr
	}
	return d.Dir.Next()
}

func (d *countingDir) Close() error {
	d.fs.closed++
	if err := d.Dir.Close(); err != nil {
		return err
	}
	return d.fs.closeErr
}
