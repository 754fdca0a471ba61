package rsa

import "github.com/hxlabs/pkcrypto/internal/pklog"

// config collects GenerateKey's tunables. spec.md §6 forbids persisted
// or environment configuration, so every knob is a functional option
// resolved at the call site.
type config struct {
	logger pklog.Logger
	pubExp uint64
}

// Option configures GenerateKey.
type Option func(*config)

// WithLogger directs non-secret diagnostic logging (bit lengths,
// candidate counts) to l. The default is pklog.Default, a no-op.
func WithLogger(l pklog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithPublicExponent overrides the public exponent e (default 65537).
// e must end up odd and satisfy 3 <= e < 2^64; GenerateKey validates
// this once the option is applied.
func WithPublicExponent(e uint64) Option {
	return func(c *config) { c.pubExp = e }
}

func newConfig(opts ...Option) *config {
	c := &config{logger: pklog.Default, pubExp: 65537}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
