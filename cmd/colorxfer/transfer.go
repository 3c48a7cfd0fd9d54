package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Shift destination clusters onto each source cluster mean",
	Long: `Clusters both images and writes one output per source cluster. In
output N every destination pixel is moved by the difference between
source cluster N and the destination cluster it belongs to. Outputs are
named after --output with the cluster index appended (out-0.png, ...).`,
	RunE: runTransfer,
}

func init() {
	transferCmd.Flags().StringP("source", "s", "", "Source image providing the colors")
	transferCmd.Flags().StringP("dest", "d", "", "Destination image to recolor")
	transferCmd.Flags().StringP("output", "o", "", "Output image path prefix")
	transferCmd.MarkFlagRequired("source")
	transferCmd.MarkFlagRequired("dest")
	transferCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(transferCmd)
}

func runTransfer(cmd *cobra.Command, args []string) error {
	srcPath, _ := cmd.Flags().GetString("source")
	dstPath, _ := cmd.Flags().GetString("dest")
	outputPath, _ := cmd.Flags().GetString("output")

	cfg, err := settings(cmd)
	if err != nil {
		return err
	}
	src, err := loadPixels(srcPath, cfg)
	if err != nil {
		return err
	}
	dst, err := loadPixels(dstPath, cfg)
	if err != nil {
		return err
	}

	outputs, err := newTransferer(cfg).MeanShift(src, dst)
	if err != nil {
		return fmt.Errorf("transfer: %w", err)
	}
	return writeVariants(cmd, outputs, outputPath)
}
