package dsa

import "github.com/hxlabs/pkcrypto/internal/pklog"

// config collects GenerateParams's tunables.
type config struct {
	logger pklog.Logger
}

// Option configures GenerateParams.
type Option func(*config)

// WithLogger directs non-secret diagnostic logging (candidate counts,
// bit lengths) to l. The default is pklog.Default, a no-op.
func WithLogger(l pklog.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts ...Option) *config {
	c := &config{logger: pklog.Default}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
