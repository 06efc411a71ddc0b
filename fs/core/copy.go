package core

import (
	"io/fs"
	"path"
	"strings"
)

// CopyFS copies every regular file under srcRoot in src into dst beneath
// dstRoot, creating parent directories and keeping permission bits
// (files without any permission bits are written 0644).
// Directories in src that hold no files are created as well, since an empty
// attribute directory is a meaningful fixture.
//
// Use "." as srcRoot to copy all of src.
//
// Example:
//
//	tree := fstest.MapFS{
//	    "1-1/idVendor":  {Data: []byte("1d6b\n")},
//	    "1-1/idProduct": {Data: []byte("0002\n")},
//	}
//	mem := billy.NewMemory()
//	err := core.CopyFS(tree, mem, ".", "/sys/bus/usb/devices")
func CopyFS(src fs.FS, dst WriteFS, srcRoot, dstRoot string) error {
	return fs.WalkDir(src, srcRoot, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := filePath
		if srcRoot != "." && srcRoot != "" {
			rel = strings.TrimPrefix(strings.TrimPrefix(filePath, srcRoot), "/")
		}
		target := path.Join(dstRoot, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		if d.IsDir() {
			return dst.MkdirAll(target, info.Mode().Perm()|0o700)
		}

		data, err := fs.ReadFile(src, filePath)
		if err != nil {
			return err
		}

		if dir := path.Dir(target); dir != "." && dir != "/" {
			if err := dst.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}

		perm := info.Mode().Perm()
		if perm == 0 {
			perm = 0o644
		}
		return dst.WriteFile(target, data, perm)
	})
}
