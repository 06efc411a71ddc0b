package sysfs

import (
	"github.com/jmgilman/go/sysfs/fs/billy"
	"github.com/jmgilman/go/sysfs/fs/core"
)

// Option configures how files and directories are opened.
type Option func(*config)

type config struct {
	fs core.FS
}

// WithFS opens files and directories through fs.
func WithFS(fs core.FS) Option {
	return func(c *config) {
		c.fs = fs
	}
}

// WithRoot resolves paths beneath root on the host filesystem, for example
// "/host" when the host's /sys is mounted at /host/sys.
func WithRoot(root string) Option {
	return func(c *config) {
		c.fs = billy.NewLocal(billy.WithRoot(root))
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.fs == nil {
		cfg.fs = billy.NewLocal()
	}
	return cfg
}
