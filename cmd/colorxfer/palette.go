package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/golang/freetype/truetype"
	"github.com/spf13/cobra"

	"github.com/wbrown/colorxfer/imageutil"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Print the dominant colors of an image",
	RunE:  runPalette,
}

func init() {
	paletteCmd.Flags().StringP("input", "i", "", "Input image")
	paletteCmd.Flags().StringP("output", "o", "", "Optional swatch sheet image")
	paletteCmd.Flags().Bool("labels", false, "Draw hex labels under the swatches")
	paletteCmd.Flags().String("font", "", "TrueType font for labels (default Go Regular)")
	paletteCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(paletteCmd)
}

func runPalette(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	withLabels, _ := cmd.Flags().GetBool("labels")
	fontPath, _ := cmd.Flags().GetString("font")

	cfg, err := settings(cmd)
	if err != nil {
		return err
	}
	src, err := loadPixels(inputPath, cfg)
	if err != nil {
		return err
	}

	swatches, err := newTransferer(cfg).Palette(src)
	if err != nil {
		return fmt.Errorf("palette: %w", err)
	}

	colors := make([]color.NRGBA, len(swatches))
	var labels []string
	if withLabels {
		labels = make([]string, len(swatches))
	}
	for i, s := range swatches {
		fmt.Fprintf(cmd.OutOrStdout(), "%d  %s  %d\n", i, s.Hex(), s.Population)
		colors[i] = s.NRGBA()
		if labels != nil {
			labels[i] = s.Hex()
		}
	}

	if outputPath == "" {
		return nil
	}
	var ttf *truetype.Font
	if fontPath != "" {
		if ttf, err = imageutil.LoadFont(fontPath); err != nil {
			return err
		}
	}
	sheet, err := imageutil.RenderSwatches(colors, labels, ttf)
	if err != nil {
		return fmt.Errorf("rendering swatches: %w", err)
	}
	if err := imageutil.SaveImage(sheet.NRGBA, outputPath); err != nil {
		return fmt.Errorf("writing swatches: %w", err)
	}
	logger.Info("swatch sheet written", slog.String("path", outputPath))
	return nil
}
