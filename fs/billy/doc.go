// Package billy provides go-billy backed implementations of core.FS.
//
// LocalFS reads the host through billy's osfs. Files are opened through
// billy while directories are streamed natively, one getdents record at a
// time, so "." and ".." are reported and nothing is sorted. WithRoot
// resolves every name beneath another directory, which is how a sysfs tree
// mounted at /host/sys or a fixture tree under t.TempDir() is read with
// its usual absolute paths.
//
// MemoryFS is backed by billy's memfs and is meant for fixtures:
//
//	mfs := billy.NewMemory()
//	_ = mfs.WriteFile("/sys/bus/usb/devices/1-1/idVendor", []byte("1d6b\n"), 0o644)
//	f, err := mfs.Open("/sys/bus/usb/devices/1-1/idVendor")
//
// Unwrap exposes the underlying billy.Filesystem for direct access.
//
// # Thread Safety
//
// LocalFS and MemoryFS may be shared between goroutines. Files and
// directory streams they return are not safe for concurrent use.
package billy
