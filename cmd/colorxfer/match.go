package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wbrown/colorxfer"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match destination color statistics to each source cluster",
	Long: `Summarizes the destination as one cluster and rescales its colors to the
mean and spread of each source cluster, writing one output per source
cluster. Cluster seeds are random unless --seed (or seed in the config
file) is given.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringP("source", "s", "", "Source image providing the colors")
	matchCmd.Flags().StringP("dest", "d", "", "Destination image to recolor")
	matchCmd.Flags().StringP("output", "o", "", "Output image path prefix")
	matchCmd.Flags().Uint64("seed", 0, "Seed for reproducible cluster initialization")
	matchCmd.MarkFlagRequired("source")
	matchCmd.MarkFlagRequired("dest")
	matchCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	srcPath, _ := cmd.Flags().GetString("source")
	dstPath, _ := cmd.Flags().GetString("dest")
	outputPath, _ := cmd.Flags().GetString("output")

	cfg, err := settings(cmd)
	if err != nil {
		return err
	}
	var extra []colorxfer.Option
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		extra = append(extra, colorxfer.WithSeed(seed))
	}

	src, err := loadPixels(srcPath, cfg)
	if err != nil {
		return err
	}
	dst, err := loadPixels(dstPath, cfg)
	if err != nil {
		return err
	}

	outputs, err := newTransferer(cfg, extra...).MatchStatistics(src, dst)
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}
	return writeVariants(cmd, outputs, outputPath)
}
