// Package fstest provides a conformance test suite for core.FS providers.
//
// The suite checks the contracts the sysfs package relies on: content read
// through Open matches what was written, files can be rewound, missing names
// map to fs.ErrNotExist, and directory streams yield "." and ".." plus every
// entry before settling on "" for good.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.ReadWriteFS {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"slices"
	"testing"

	"github.com/jmgilman/go/sysfs/fs/core"
)

// FSTestConfig configures the suite to match provider characteristics.
type FSTestConfig struct {
	// Root is the directory fixtures are written under. Defaults to
	// "/fstest".
	Root string

	// SkipTests lists test names to skip.
	// Format: "Group/SubTest" (e.g., "DirFS/OpenDirOnFile").
	SkipTests []string
}

// DefaultTestConfig returns the configuration used by TestSuite.
func DefaultTestConfig() FSTestConfig {
	return FSTestConfig{Root: "/fstest"}
}

func (c FSTestConfig) skip(t *testing.T, name string) bool {
	t.Helper()
	if slices.Contains(c.SkipTests, name) {
		t.Skip("Skipped by provider configuration")
		return true
	}
	return false
}

func (c FSTestConfig) path(elem string) string {
	root := c.Root
	if root == "" {
		root = DefaultTestConfig().Root
	}
	return root + "/" + elem
}

// TestSuite runs all conformance tests with DefaultTestConfig.
// newFS must return a provider whose fixture root is empty.
func TestSuite(t *testing.T, newFS func() core.ReadWriteFS) {
	TestSuiteWithConfig(t, newFS, DefaultTestConfig())
}

// TestSuiteWithConfig runs all conformance tests with config.
func TestSuiteWithConfig(t *testing.T, newFS func() core.ReadWriteFS, config FSTestConfig) {
	t.Run("ReadFS", func(t *testing.T) {
		if config.skip(t, "ReadFS") {
			return
		}
		TestReadFSWithConfig(t, newFS(), config)
	})

	t.Run("DirFS", func(t *testing.T) {
		if config.skip(t, "DirFS") {
			return
		}
		TestDirFSWithConfig(t, newFS(), config)
	})
}
