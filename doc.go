// Package sysfs reads sysfs attribute files and enumerates sysfs
// directories.
//
// Attribute files are small pseudo-files holding one value: a line of
// text, a decimal or hexadecimal integer, or a binary blob such as a USB
// descriptor table. File wraps an open attribute and reads it as a line,
// an integer or raw bytes. Directory streams the entry names of a
// directory one at a time, unsorted, with "." and ".." included.
//
// For one-shot reads, the package-level helpers open, read and close in a
// single call:
//
//	vendor, err := sysfs.ReadHex("/sys/bus/usb/devices/1-1/idVendor")
//	product, err := sysfs.ReadString("/sys/bus/usb/devices/1-1/product")
//	desc, err := sysfs.ReadBytes("/sys/bus/usb/devices/1-1/descriptors")
//	names, err := sysfs.ReadNames("/sys/bus/usb/devices")
//
// # Providers
//
// Files and directories are opened through a core.FS. The default is the
// host filesystem rooted at "/". WithRoot reads a tree mounted elsewhere,
// and WithFS accepts any provider, such as an in-memory fixture:
//
//	mfs := billy.NewMemory()
//	_ = mfs.WriteFile("/sys/class/net/lo/mtu", []byte("65536\n"), 0o644)
//	mtu, err := sysfs.ReadInt("/sys/class/net/lo/mtu", 10, sysfs.WithFS(mfs))
//
// # Errors
//
// Every error is an errors.PlatformError. Use errors.GetCode to tell them
// apart:
//
//   - errors.CodeOpenFailed: the path could not be opened
//   - errors.CodeReadFailed: a read, seek or directory read failed
//   - errors.CodeParseFailed: no integer could be parsed
//   - errors.CodeInvalidInput: an argument was rejected before any I/O
//
// The attempted path is attached as the "path" context field, and the
// underlying cause stays reachable, so errors.Is(err, fs.ErrNotExist)
// works on open failures.
//
// # Resource Handling
//
// File and Directory each own exactly one handle. Close releases it on the
// first call; later calls do nothing. Operations after Close fail with a
// read error wrapping core.ErrClosed. Neither type is safe for concurrent
// use, and copies of a pointer share the same handle.
package sysfs
