package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wbrown/colorxfer/imageutil"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect image size and transparency",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}

	img, err := imageutil.LoadImage(path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	total := img.Width() * img.Height()
	fmt.Fprintf(w, "File:        %s\n", path)
	fmt.Fprintf(w, "Dimensions:  %d x %d\n", img.Width(), img.Height())
	fmt.Fprintf(w, "File size:   %d bytes (%.1f MB)\n", info.Size(), float64(info.Size())/(1024*1024))
	fmt.Fprintf(w, "Transparent: %d of %d pixels\n", img.CountBelowAlpha(1), total)
	fmt.Fprintf(w, "Below alpha %d: %d pixels\n", cfg.AlphaThreshold, img.CountBelowAlpha(uint8(cfg.AlphaThreshold)))

	if fit := imageutil.FitSize(img.Bounds().Size(), cfg.MaxDimension); fit != img.Bounds().Size() {
		fmt.Fprintf(w, "Sampled at:  %d x %d\n", fit.X, fit.Y)
	}
	return nil
}
