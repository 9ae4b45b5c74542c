package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/meshimport/pkg/format"
)

var detectCmd = &cobra.Command{
	Use:   "detect [file]",
	Short: "Estimate the format of a model file",
	Long:  "Score the file against every known format and report the most likely one.",
	Args:  cobra.ExactArgs(1),
	Run:   runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) {
	filename := args[0]

	fmt.Printf("Format probabilities for %s\n", filename)
	fmt.Println("====================")
	for _, imp := range format.Importers() {
		fmt.Printf("  %-12s %.6f\n", imp.Name(), imp.Probability(filename))
	}

	best, probability := format.Detect(filename)
	fmt.Printf("\nBest match: %s (%.6f)\n", best.Name(), probability)
	if probability < cfg.Import.MinProbability {
		fmt.Printf("Below import threshold %.2f - the file would be rejected.\n",
			cfg.Import.MinProbability)
	}
}
