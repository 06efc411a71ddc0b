package core_test

import (
	"testing"

	"github.com/jmgilman/go/sysfs/fs/core"
)

// TestFSType_String verifies FSType.String() returns correct string representations.
func TestFSType_String(t *testing.T) {
	tests := []struct {
		name     string
		fsType   core.FSType
		expected string
	}{
		{"Unknown", core.FSTypeUnknown, "unknown"},
		{"Local", core.FSTypeLocal, "local"},
		{"Memory", core.FSTypeMemory, "memory"},
		{"Invalid", core.FSType(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fsType.String(); got != tt.expected {
				t.Errorf("FSType(%d).String() = %q, want %q", tt.fsType, got, tt.expected)
			}
		})
	}
}

// TestFSType_ZeroValue verifies the zero value is unknown.
func TestFSType_ZeroValue(t *testing.T) {
	var ft core.FSType
	if ft != core.FSTypeUnknown {
		t.Errorf("zero FSType = %d, want FSTypeUnknown", ft)
	}
}
