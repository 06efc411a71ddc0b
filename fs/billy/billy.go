package billy

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/go/sysfs/fs/core"
	"github.com/jmgilman/go/sysfs/internal/dirent"
)

// LocalFS reads the host filesystem through billy's osfs.
// Names are resolved beneath the root given to NewLocal ("/" by default),
// so a sysfs tree mounted elsewhere can be read with its usual paths.
type LocalFS struct {
	base
	root string
}

// MemoryFS holds an in-memory tree backed by billy's memfs.
// It is meant for fixtures: seed it with WriteFile, MkdirAll or core.CopyFS.
type MemoryFS struct {
	base
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot resolves every name beneath root instead of "/".
func WithRoot(root string) Option {
	return func(c *config) {
		c.root = root
	}
}

// NewLocal creates a billy-backed local filesystem.
func NewLocal(opts ...Option) *LocalFS {
	cfg := &config{root: "/"}
	for _, opt := range opts {
		opt(cfg)
	}
	root := filepath.Clean(cfg.root)
	return &LocalFS{
		base: base{bfs: osfs.New(root)},
		root: root,
	}
}

// NewMemory creates an empty billy-backed in-memory filesystem.
func NewMemory() *MemoryFS {
	return &MemoryFS{
		base: base{bfs: memfs.New()},
	}
}

// normalize cleans a name and anchors it at the provider root, so that
// relative names and ".." segments cannot leave the root.
func normalize(name string) string {
	return filepath.ToSlash(filepath.Join("/", name))
}

// base holds the operations both providers share.
type base struct {
	bfs billy.Filesystem
}

// Unwrap returns the underlying billy.Filesystem.
func (b *base) Unwrap() billy.Filesystem {
	return b.bfs
}

// Open opens the named file for reading.
func (b *base) Open(name string) (core.File, error) {
	name = normalize(name)
	f, err := b.bfs.Open(name)
	if err != nil {
		return nil, core.PathError("open", name, err)
	}
	return &File{file: f, name: name}, nil
}

// MkdirAll creates a directory and any missing parents.
func (b *base) MkdirAll(path string, perm fs.FileMode) error {
	path = normalize(path)
	return core.PathError("mkdir", path, b.bfs.MkdirAll(path, perm))
}

// WriteFile creates or truncates name and writes data to it.
func (b *base) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = normalize(name)
	f, err := b.bfs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return core.PathError("open", name, err)
	}
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return core.PathError("write", name, err)
}

// OpenDir opens a native directory stream. The record buffer is sized from
// the maximum name length of the filesystem holding the directory.
func (lfs *LocalFS) OpenDir(name string) (core.Dir, error) {
	d, err := dirent.Open(filepath.Join(lfs.root, filepath.FromSlash(normalize(name))))
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Root returns the directory names are resolved under.
func (lfs *LocalFS) Root() string {
	return lfs.root
}

// Type returns FSTypeLocal.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// OpenDir snapshots the directory listing and streams it as ".", ".." and
// then the entries in billy's order.
func (mfs *MemoryFS) OpenDir(name string) (core.Dir, error) {
	name = normalize(name)
	info, err := mfs.bfs.Stat(name)
	if err != nil {
		return nil, core.PathError("opendir", name, err)
	}
	if !info.IsDir() {
		return nil, core.PathError("opendir", name, core.ErrNotDir)
	}

	infos, err := mfs.bfs.ReadDir(name)
	if err != nil {
		return nil, core.PathError("opendir", name, err)
	}
	names := make([]string, 0, len(infos)+2)
	names = append(names, ".", "..")
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return &memDir{name: name, names: names}, nil
}

// Type returns FSTypeMemory.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// Compile-time interface checks.
var (
	_ core.ReadWriteFS = (*LocalFS)(nil)
	_ core.ReadWriteFS = (*MemoryFS)(nil)
)
