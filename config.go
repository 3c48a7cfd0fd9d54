package colorxfer

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/wbrown/colorxfer/colorspace"
)

// Config is the file form of the Transferer settings plus the sampling
// size used when images are loaded.
type Config struct {
	Space          colorspace.Space `toml:"space"`
	AlphaThreshold int              `toml:"alpha_threshold"`
	SourceClusters int              `toml:"source_clusters"`
	DestClusters   int              `toml:"dest_clusters"`
	Iterations     int              `toml:"iterations"`
	StdIterations  int              `toml:"std_iterations"`
	MaxDimension   int              `toml:"max_dimension"`
	Seed           *uint64          `toml:"seed,omitempty"`
}

// DefaultConfig returns the settings New uses when given no options, and
// a 256 pixel sampling size.
func DefaultConfig() Config {
	t := New()
	return Config{
		Space:          t.Space,
		AlphaThreshold: int(t.AlphaThreshold),
		SourceClusters: t.SourceClusters,
		DestClusters:   t.DestClusters,
		Iterations:     t.Iterations,
		StdIterations:  t.StdIterations,
		MaxDimension:   256,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Keys missing from
// the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports settings no transfer could run with.
func (c Config) Validate() error {
	var errs []error
	if c.AlphaThreshold < 0 || c.AlphaThreshold > 255 {
		errs = append(errs, fmt.Errorf("alpha_threshold %d outside 0..255", c.AlphaThreshold))
	}
	if c.SourceClusters <= 0 {
		errs = append(errs, fmt.Errorf("source_clusters must be positive, got %d", c.SourceClusters))
	}
	if c.DestClusters <= 0 {
		errs = append(errs, fmt.Errorf("dest_clusters must be positive, got %d", c.DestClusters))
	}
	if c.Iterations <= 0 {
		errs = append(errs, fmt.Errorf("iterations must be positive, got %d", c.Iterations))
	}
	if c.StdIterations <= 0 {
		errs = append(errs, fmt.Errorf("std_iterations must be positive, got %d", c.StdIterations))
	}
	if c.MaxDimension < 0 {
		errs = append(errs, fmt.Errorf("max_dimension must not be negative, got %d", c.MaxDimension))
	}
	return errors.Join(errs...)
}

// Options converts the config into Transferer options.
func (c Config) Options() []Option {
	opts := []Option{
		WithSpace(c.Space),
		WithAlphaThreshold(uint8(c.AlphaThreshold)),
		WithSourceClusters(c.SourceClusters),
		WithDestClusters(c.DestClusters),
		WithIterations(c.Iterations),
		WithStdIterations(c.StdIterations),
	}
	if c.Seed != nil {
		opts = append(opts, WithSeed(*c.Seed))
	}
	return opts
}
