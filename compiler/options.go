package compiler

import (
	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
)

type config struct {
	log   *zerolog.Logger
	stats *Stats
}

// Option configures a compilation
type Option func(*config)

// WithLogger replaces gnark's global logger for this compilation
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.log = &l
	}
}

// WithStats records the size of the circuit after each stage into s
func WithStats(s *Stats) Option {
	return func(c *config) {
		c.stats = s
	}
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, o := range opts {
		o(c)
	}
	if c.log == nil {
		l := logger.Logger()
		c.log = &l
	}
	return c
}

// Logger returns the logger selected by opts, gnark's global logger by default
func Logger(opts ...Option) *zerolog.Logger {
	return newConfig(opts).log
}
