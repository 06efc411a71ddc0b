package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/sysfs/fs/core"
)

// TestReadFS tests Open and the File contract with DefaultTestConfig.
func TestReadFS(t *testing.T, filesystem core.ReadWriteFS) {
	TestReadFSWithConfig(t, filesystem, DefaultTestConfig())
}

// TestReadFSWithConfig tests Open and the File contract.
func TestReadFSWithConfig(t *testing.T, filesystem core.ReadWriteFS, config FSTestConfig) {
	attr := config.path("read/idVendor")
	content := []byte("1d6b\n")

	if err := filesystem.MkdirAll(config.path("read"), 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", config.path("read"), err)
	}
	if err := filesystem.WriteFile(attr, content, 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", attr, err)
	}

	big := bytes.Repeat([]byte("0123456789abcdef"), 4096)
	bigPath := config.path("read/descriptors")
	if err := filesystem.WriteFile(bigPath, big, 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", bigPath, err)
	}

	t.Run("Open", func(t *testing.T) {
		if config.skip(t, "ReadFS/Open") {
			return
		}
		testReadFSOpen(t, filesystem, attr, content)
	})
	t.Run("LargeFile", func(t *testing.T) {
		if config.skip(t, "ReadFS/LargeFile") {
			return
		}
		testReadFSOpen(t, filesystem, bigPath, big)
	})
	t.Run("SeekRewind", func(t *testing.T) {
		if config.skip(t, "ReadFS/SeekRewind") {
			return
		}
		testReadFSSeekRewind(t, filesystem, attr, content)
	})
	t.Run("OpenNotExist", func(t *testing.T) {
		if config.skip(t, "ReadFS/OpenNotExist") {
			return
		}
		testReadFSOpenNotExist(t, filesystem, config)
	})
	t.Run("Name", func(t *testing.T) {
		if config.skip(t, "ReadFS/Name") {
			return
		}
		testReadFSName(t, filesystem, attr)
	})
}

func openOrFail(t *testing.T, filesystem core.FS, name string) core.File {
	t.Helper()
	f, err := filesystem.Open(name)
	if err != nil {
		t.Fatalf("Open(%q): got error %v, want nil", name, err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

// testReadFSOpen reads a file to EOF and compares it with want.
func testReadFSOpen(t *testing.T, filesystem core.FS, name string, want []byte) {
	f := openOrFail(t, filesystem, name)

	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll(%q): got error %v", name, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadAll(%q): got %d bytes, want %d bytes matching the fixture", name, len(got), len(want))
	}
}

// testReadFSSeekRewind reads, rewinds and reads again.
func testReadFSSeekRewind(t *testing.T, filesystem core.FS, name string, want []byte) {
	f := openOrFail(t, filesystem, name)

	if _, err := io.ReadAll(f); err != nil {
		t.Fatalf("first ReadAll(%q): got error %v", name, err)
	}
	pos, err := f.Seek(0, io.SeekStart)
	if err != nil {
		t.Fatalf("Seek(0, SeekStart): got error %v", err)
	}
	if pos != 0 {
		t.Errorf("Seek(0, SeekStart): got position %d, want 0", pos)
	}
	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("second ReadAll(%q): got error %v", name, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadAll after rewind: got %q, want %q", got, want)
	}
}

// testReadFSOpenNotExist verifies missing files map to fs.ErrNotExist.
func testReadFSOpenNotExist(t *testing.T, filesystem core.FS, config FSTestConfig) {
	name := config.path("read/missing")
	f, err := filesystem.Open(name)
	if err == nil {
		_ = f.Close()
		t.Fatalf("Open(%q): got nil error, want fs.ErrNotExist", name)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(%q): got error %v, want fs.ErrNotExist", name, err)
	}
	var pe *fs.PathError
	if !errors.As(err, &pe) {
		t.Errorf("Open(%q): got %T, want *fs.PathError", name, err)
	}
}

// testReadFSName verifies Name reports the opened name.
func testReadFSName(t *testing.T, filesystem core.FS, name string) {
	f := openOrFail(t, filesystem, name)
	if f.Name() != name {
		t.Errorf("Name(): got %q, want %q", f.Name(), name)
	}
}
