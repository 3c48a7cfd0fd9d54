package colorxfer

import (
	"log/slog"
	"math/rand/v2"

	"github.com/wbrown/colorxfer/cluster"
	"github.com/wbrown/colorxfer/colorspace"
)

// Option is a functional option for configuring a Transferer.
type Option func(*Transferer)

// WithSpace sets the intermediate color space.
func WithSpace(space colorspace.Space) Option {
	return func(t *Transferer) {
		t.Space = space
	}
}

// WithAlphaThreshold sets the alpha below which pixels are zeroed before
// clustering.
func WithAlphaThreshold(threshold uint8) Option {
	return func(t *Transferer) {
		t.AlphaThreshold = threshold
	}
}

// WithSourceClusters sets the number of clusters found in the source.
func WithSourceClusters(k int) Option {
	return func(t *Transferer) {
		t.SourceClusters = k
	}
}

// WithDestClusters sets the number of clusters found in the destination
// for mean-shift transfer.
func WithDestClusters(k int) Option {
	return func(t *Transferer) {
		t.DestClusters = k
	}
}

// WithIterations sets the iteration budget of the deterministic k-means.
func WithIterations(n int) Option {
	return func(t *Transferer) {
		t.Iterations = n
	}
}

// WithStdIterations sets the iteration budget of the k-means that also
// estimates dispersion.
func WithStdIterations(n int) Option {
	return func(t *Transferer) {
		t.StdIterations = n
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transferer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithSource sets the random source for statistics matching.
func WithSource(src cluster.Source) Option {
	return func(t *Transferer) {
		t.source = src
	}
}

// WithSeed makes statistics matching reproducible by seeding a PCG
// generator.
func WithSeed(seed uint64) Option {
	return func(t *Transferer) {
		t.source = rand.New(rand.NewPCG(seed, seed))
	}
}
