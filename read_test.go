package sysfs

import (
	"bytes"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/sysfs/errors"
)

func usbFixture(t *testing.T) *countingFS {
	t.Helper()
	return &countingFS{FS: newFixture(t, map[string]string{
		"sys/bus/usb/devices/1-1/idVendor":           "1d6b\n",
		"sys/bus/usb/devices/1-1/idProduct":          "0002\n",
		"sys/bus/usb/devices/1-1/product":            "  xHCI Host Controller \t\r\n",
		"sys/bus/usb/devices/1-1/manufacturer":       "Linux 6.1 xhci-hcd\n",
		"sys/bus/usb/devices/1-1/bNumConfigurations": "1\n",
		"sys/bus/usb/devices/1-1/descriptors":        string(bytes.Repeat([]byte{0x12, 0x01, 0x00, 0x02}, 2500)),
		"sys/bus/usb/devices/1-1/empty":              "",
	})}
}

func TestReadHex_VendorID(t *testing.T) {
	cfs := usbFixture(t)

	v, err := ReadHex("/sys/bus/usb/devices/1-1/idVendor", WithFS(cfs))
	require.NoError(t, err)
	assert.Equal(t, int64(7531), v)
	assert.Equal(t, cfs.opened, cfs.closed)
}

func TestReadInt(t *testing.T) {
	cfs := usbFixture(t)

	v, err := ReadInt("/sys/bus/usb/devices/1-1/bNumConfigurations", 10, WithFS(cfs))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, err = ReadInt("/sys/bus/usb/devices/1-1/idProduct", 16, WithFS(cfs))
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
}

func TestReadString(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"newline", "42\n", "42"},
		{"leading whitespace kept", "  42\n", "  42"},
		{"mixed trailing whitespace", "usb 2.0\t \r\n", "usb 2.0"},
		{"form feed", "a\f", "a"},
		{"internal whitespace kept", "a  b\n", "a  b"},
		{"only first line", "first\nsecond\n", "first"},
		{"only whitespace", " \n", ""},
		{"vertical tab kept", "a\v\n", "a\v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := newFixture(t, map[string]string{"attr": tt.content})

			got, err := ReadString("/attr", WithFS(mfs))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadString_EmptyFile(t *testing.T) {
	cfs := usbFixture(t)

	_, err := ReadString("/sys/bus/usb/devices/1-1/empty", WithFS(cfs))
	require.Error(t, err)
	assert.Equal(t, errors.CodeReadFailed, errors.GetCode(err))
	assert.Equal(t, cfs.opened, cfs.closed)
}

func TestReadBytes(t *testing.T) {
	cfs := usbFixture(t)

	data, err := ReadBytes("/sys/bus/usb/devices/1-1/descriptors", WithFS(cfs))
	require.NoError(t, err)
	assert.Len(t, data, 10000)
	assert.Equal(t, bytes.Repeat([]byte{0x12, 0x01, 0x00, 0x02}, 2500), data)

	data, err = ReadBytes("/sys/bus/usb/devices/1-1/empty", WithFS(cfs))
	require.NoError(t, err)
	assert.NotNil(t, data)
	assert.Empty(t, data)
}

func TestReadNames(t *testing.T) {
	cfs := &countingFS{FS: newFixture(t, map[string]string{
		"sys/bus/usb/devices/1-1/idVendor":  "1d6b\n",
		"sys/bus/usb/devices/1-1/idProduct": "0002\n",
	})}

	names, err := ReadNames("/sys/bus/usb/devices/1-1", WithFS(cfs))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{".", "..", "idVendor", "idProduct"}, names)
	assert.Equal(t, 1, cfs.closed)
}

func TestReadNames_NotExist(t *testing.T) {
	cfs := usbFixture(t)

	names, err := ReadNames("/sys/bus/pci/devices", WithFS(cfs))
	require.Error(t, err)
	assert.Nil(t, names)
	assert.Equal(t, errors.CodeOpenFailed, errors.GetCode(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadNames_ReadFailure(t *testing.T) {
	cfs := usbFixture(t)
	cfs.nextErr = syscall.EIO

	_, err := ReadNames("/sys/bus/usb/devices/1-1", WithFS(cfs))
	require.Error(t, err)
	assert.Equal(t, errors.CodeReadFailed, errors.GetCode(err))
	assert.Equal(t, 1, cfs.closed)
}

func TestHelpers_NotExist(t *testing.T) {
	const path = "/sys/bus/usb/devices/9-9/idVendor"
	cfs := usbFixture(t)

	_, err := ReadHex(path, WithFS(cfs))
	require.Error(t, err)
	assert.Equal(t, errors.CodeOpenFailed, errors.GetCode(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	got, ok := errors.ContextValue(err, "path")
	require.True(t, ok)
	assert.Equal(t, path, got)

	_, err = ReadString(path, WithFS(cfs))
	assert.Equal(t, errors.CodeOpenFailed, errors.GetCode(err))

	_, err = ReadBytes(path, WithFS(cfs))
	assert.Equal(t, errors.CodeOpenFailed, errors.GetCode(err))

	assert.Equal(t, 0, cfs.opened)
	assert.Equal(t, 0, cfs.closed)
}

// TestHelpers_ReleaseHandles checks every helper closes exactly the
// handles it opened, whether the read succeeds or fails.
func TestHelpers_ReleaseHandles(t *testing.T) {
	const dev = "/sys/bus/usb/devices/1-1"

	tests := []struct {
		name    string
		readErr error
		call    func(opt Option) error
		wantErr bool
	}{
		{
			name: "ReadInt",
			call: func(opt Option) error { _, err := ReadInt(dev+"/idVendor", 16, opt); return err },
		},
		{
			name:    "ReadInt invalid base",
			call:    func(opt Option) error { _, err := ReadInt(dev+"/idVendor", 8, opt); return err },
			wantErr: true,
		},
		{
			name:    "ReadInt parse failure",
			call:    func(opt Option) error { _, err := ReadInt(dev+"/manufacturer", 10, opt); return err },
			wantErr: true,
		},
		{
			name:    "ReadHex read failure",
			readErr: syscall.EIO,
			call:    func(opt Option) error { _, err := ReadHex(dev+"/idVendor", opt); return err },
			wantErr: true,
		},
		{
			name: "ReadString",
			call: func(opt Option) error { _, err := ReadString(dev+"/product", opt); return err },
		},
		{
			name:    "ReadString read failure",
			readErr: syscall.EIO,
			call:    func(opt Option) error { _, err := ReadString(dev+"/product", opt); return err },
			wantErr: true,
		},
		{
			name: "ReadBytes",
			call: func(opt Option) error { _, err := ReadBytes(dev+"/descriptors", opt); return err },
		},
		{
			name:    "ReadBytes read failure",
			readErr: syscall.EIO,
			call:    func(opt Option) error { _, err := ReadBytes(dev+"/descriptors", opt); return err },
			wantErr: true,
		},
		{
			name: "ReadNames",
			call: func(opt Option) error { _, err := ReadNames(dev, opt); return err },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfs := usbFixture(t)
			cfs.readErr = tt.readErr

			err := tt.call(WithFS(cfs))
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, 1, cfs.opened)
			assert.Equal(t, 1, cfs.closed)
		})
	}
}

func TestHelpers_CloseFailure(t *testing.T) {
	cfs := usbFixture(t)
	cfs.closeErr = syscall.EIO

	_, err := ReadHex("/sys/bus/usb/devices/1-1/idVendor", WithFS(cfs))
	require.Error(t, err)
	assert.Equal(t, errors.CodeInternal, errors.GetCode(err))

	cfs.readErr = syscall.ENODEV
	_, err = ReadHex("/sys/bus/usb/devices/1-1/idVendor", WithFS(cfs))
	require.Error(t, err)
	assert.Equal(t, errors.CodeReadFailed, errors.GetCode(err))
	assert.True(t, errors.Is(err, syscall.ENODEV))
}

func TestDefaultProvider(t *testing.T) {
	cfg := newConfig(nil)
	require.NotNil(t, cfg.fs)

	mfs := newFixture(t, nil)
	cfg = newConfig([]Option{WithFS(mfs)})
	assert.Same(t, mfs, cfg.fs)
}
