package cluster

import (
	"log/slog"
	"math/rand/v2"
)

// Source supplies uniform random numbers in [0,1) for the random
// initializer of KMeansStd. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float32() float32
}

// globalSource draws from the auto-seeded math/rand/v2 generator, so
// repeated calls differ.
type globalSource struct{}

func (globalSource) Float32() float32 { return rand.Float32() }

type config struct {
	logger *slog.Logger
	source Source
}

// Option configures a clustering call.
type Option func(*config)

// WithLogger sends per-iteration diagnostics to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSource sets the random source used by KMeansStd. Tests pass a
// fixed sequence here to make the random initialization reproducible.
func WithSource(src Source) Option {
	return func(c *config) {
		if src != nil {
			c.source = src
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		logger: slog.New(slog.DiscardHandler),
		source: globalSource{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
