package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/wbrown/colorxfer"
	"github.com/wbrown/colorxfer/colorspace"
)

var rootCmd = &cobra.Command{
	Use:               "colorxfer",
	Short:             "Extract color palettes and transfer color statistics between images",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

var logger = slog.New(slog.DiscardHandler)

func init() {
	defaults := colorxfer.DefaultConfig()
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "TOML config file")
	pf.String("space", defaults.Space.String(), "Intermediate color space (rgb, hsv, xyz, lab)")
	pf.Int("alpha-threshold", defaults.AlphaThreshold, "Pixels with alpha below this are treated as transparent black")
	pf.Int("src-k", defaults.SourceClusters, "Number of source clusters")
	pf.Int("dst-k", defaults.DestClusters, "Number of destination clusters for mean-shift transfer")
	pf.Int("iterations", defaults.Iterations, "k-means iterations")
	pf.Int("std-iterations", defaults.StdIterations, "k-means iterations when estimating dispersion")
	pf.Int("max-dimension", defaults.MaxDimension, "Downscale inputs so the longest side is at most this (0 keeps size)")
	pf.BoolP("verbose", "v", false, "Log per-iteration diagnostics")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
	return nil
}

// settings loads the config file, if any, and applies the flags the user
// set explicitly on top of it.
func settings(cmd *cobra.Command) (colorxfer.Config, error) {
	cfg := colorxfer.DefaultConfig()
	flags := cmd.Flags()

	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := colorxfer.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if flags.Changed("space") {
		name, _ := flags.GetString("space")
		space, err := colorspace.ParseSpace(name)
		if err != nil {
			return cfg, err
		}
		cfg.Space = space
	}
	ints := map[string]*int{
		"alpha-threshold": &cfg.AlphaThreshold,
		"src-k":           &cfg.SourceClusters,
		"dst-k":           &cfg.DestClusters,
		"iterations":      &cfg.Iterations,
		"std-iterations":  &cfg.StdIterations,
		"max-dimension":   &cfg.MaxDimension,
	}
	for name, dst := range ints {
		if flags.Changed(name) {
			*dst, _ = flags.GetInt(name)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func newTransferer(cfg colorxfer.Config, extra ...colorxfer.Option) *colorxfer.Transferer {
	opts := append(cfg.Options(), colorxfer.WithLogger(logger))
	return colorxfer.New(append(opts, extra...)...)
}

func loadPixels(path string, cfg colorxfer.Config) (colorxfer.Buffer, error) {
	buf, err := colorxfer.FileSource{Path: path, MaxDimension: cfg.MaxDimension}.Pixels()
	if err != nil {
		return colorxfer.Buffer{}, fmt.Errorf("loading %s: %w", path, err)
	}
	logger.Debug("image loaded",
		slog.String("path", path),
		slog.Int("width", buf.Width),
		slog.Int("height", buf.Height))
	return buf, nil
}

// numberedPath turns out.png into out-3.png.
func numberedPath(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), n, ext)
}

// writeVariants stores one file per transfer variant and reports each
// path on the command's output.
func writeVariants(cmd *cobra.Command, outputs []colorxfer.Buffer, path string) error {
	for i, out := range outputs {
		name := numberedPath(path, i)
		if err := (colorxfer.FileSink{Path: name}).Put(out); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
