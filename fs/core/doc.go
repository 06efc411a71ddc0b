// Package core defines the provider contracts behind the sysfs package.
//
// A provider opens two kinds of handles: a seekable read-only File for
// attribute nodes and a Dir that streams directory entry names one at a
// time. The sysfs package owns those handles and guarantees they are closed;
// providers only need to open them.
//
// # Interfaces
//
//   - FS: Open, OpenDir, Type
//   - File: io.Reader, io.Seeker, io.Closer, Name
//   - Dir: Next, Close, Name
//   - WriteFS: MkdirAll, WriteFile, used to seed fixture trees
//
// # Provider Implementations
//
// Concrete providers live in github.com/jmgilman/go/sysfs/fs/billy:
//
//   - LocalFS reads the host filesystem, optionally below a root prefix
//   - MemoryFS holds an in-memory tree for tests
//
// Providers are validated with the conformance suite in
// github.com/jmgilman/go/sysfs/fs/fstest.
//
// # Seeding Fixtures
//
//	tree := fstest.MapFS{
//	    "usb1/idVendor":  {Data: []byte("1d6b\n")},
//	    "usb1/idProduct": {Data: []byte("0002\n")},
//	}
//	mem := billy.NewMemory()
//	if err := core.CopyFS(tree, mem, ".", "/sys/bus/usb/devices"); err != nil {
//	    return err
//	}
//
// The package has no dependencies outside the standard library.
package core
