package fstest

import (
	"errors"
	"io/fs"
	"slices"
	"testing"

	"github.com/jmgilman/go/sysfs/fs/core"
)

// TestDirFS tests OpenDir and the Dir contract with DefaultTestConfig.
func TestDirFS(t *testing.T, filesystem core.ReadWriteFS) {
	TestDirFSWithConfig(t, filesystem, DefaultTestConfig())
}

// TestDirFSWithConfig tests OpenDir and the Dir contract.
func TestDirFSWithConfig(t *testing.T, filesystem core.ReadWriteFS, config FSTestConfig) {
	dir := config.path("dir/1-1")
	entries := []string{"idVendor", "idProduct", "manufacturer"}

	if err := filesystem.MkdirAll(dir+"/power", 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", dir+"/power", err)
	}
	for _, e := range entries {
		if err := filesystem.WriteFile(dir+"/"+e, []byte(e+"\n"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", dir+"/"+e, err)
		}
	}
	if err := filesystem.MkdirAll(config.path("dir/empty"), 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", config.path("dir/empty"), err)
	}

	t.Run("Entries", func(t *testing.T) {
		if config.skip(t, "DirFS/Entries") {
			return
		}
		want := append([]string{".", "..", "power"}, entries...)
		testDirFSEntries(t, filesystem, dir, want)
	})
	t.Run("EmptyDir", func(t *testing.T) {
		if config.skip(t, "DirFS/EmptyDir") {
			return
		}
		testDirFSEntries(t, filesystem, config.path("dir/empty"), []string{".", ".."})
	})
	t.Run("ExhaustionIdempotent", func(t *testing.T) {
		if config.skip(t, "DirFS/ExhaustionIdempotent") {
			return
		}
		testDirFSExhaustion(t, filesystem, dir)
	})
	t.Run("OpenDirNotExist", func(t *testing.T) {
		if config.skip(t, "DirFS/OpenDirNotExist") {
			return
		}
		testDirFSNotExist(t, filesystem, config.path("dir/missing"))
	})
	t.Run("OpenDirOnFile", func(t *testing.T) {
		if config.skip(t, "DirFS/OpenDirOnFile") {
			return
		}
		testDirFSOnFile(t, filesystem, dir+"/idVendor")
	})
	t.Run("Close", func(t *testing.T) {
		if config.skip(t, "DirFS/Close") {
			return
		}
		testDirFSClose(t, filesystem, dir)
	})
}

func drain(t *testing.T, d core.Dir) []string {
	t.Helper()
	var names []string
	for {
		name, err := d.Next()
		if err != nil {
			t.Fatalf("Next(): got error %v", err)
		}
		if name == "" {
			return names
		}
		names = append(names, name)
	}
}

// testDirFSEntries compares the streamed names with want, ignoring order.
func testDirFSEntries(t *testing.T, filesystem core.FS, dir string, want []string) {
	d, err := filesystem.OpenDir(dir)
	if err != nil {
		t.Fatalf("OpenDir(%q): got error %v, want nil", dir, err)
	}
	defer func() {
		if err := d.Close(); err != nil {
			t.Errorf("Close(): got error %v", err)
		}
	}()

	got := drain(t, d)
	slices.Sort(got)
	want = slices.Clone(want)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Errorf("OpenDir(%q) entries: got %v, want %v", dir, got, want)
	}
}

// testDirFSExhaustion verifies "" repeats after the last entry.
func testDirFSExhaustion(t *testing.T, filesystem core.FS, dir string) {
	d, err := filesystem.OpenDir(dir)
	if err != nil {
		t.Fatalf("OpenDir(%q): got error %v, want nil", dir, err)
	}
	defer func() { _ = d.Close() }()

	drain(t, d)
	for i := 0; i < 3; i++ {
		name, err := d.Next()
		if err != nil {
			t.Fatalf("Next() after exhaustion: got error %v", err)
		}
		if name != "" {
			t.Errorf("Next() after exhaustion: got %q, want \"\"", name)
		}
	}
}

// testDirFSNotExist verifies missing directories map to fs.ErrNotExist.
func testDirFSNotExist(t *testing.T, filesystem core.FS, dir string) {
	d, err := filesystem.OpenDir(dir)
	if err == nil {
		_ = d.Close()
		t.Fatalf("OpenDir(%q): got nil error, want fs.ErrNotExist", dir)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("OpenDir(%q): got error %v, want fs.ErrNotExist", dir, err)
	}
}

// testDirFSOnFile verifies OpenDir refuses regular files.
func testDirFSOnFile(t *testing.T, filesystem core.FS, name string) {
	d, err := filesystem.OpenDir(name)
	if err == nil {
		_ = d.Close()
		t.Fatalf("OpenDir(%q): got nil error on a regular file", name)
	}
	if !errors.Is(err, core.ErrNotDir) {
		t.Errorf("OpenDir(%q): got error %v, want core.ErrNotDir", name, err)
	}
}

// testDirFSClose verifies a closed stream rejects further use.
func testDirFSClose(t *testing.T, filesystem core.FS, dir string) {
	d, err := filesystem.OpenDir(dir)
	if err != nil {
		t.Fatalf("OpenDir(%q): got error %v, want nil", dir, err)
	}
	if d.Name() == "" {
		t.Error("Name(): got empty name")
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close(): got error %v", err)
	}
	if err := d.Close(); !errors.Is(err, fs.ErrClosed) {
		t.Errorf("second Close(): got %v, want fs.ErrClosed", err)
	}
	if _, err := d.Next(); !errors.Is(err, fs.ErrClosed) {
		t.Errorf("Next() after Close(): got %v, want fs.ErrClosed", err)
	}
}
