package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/meshimport/pkg/analysis"
	"github.com/philipparndt/meshimport/pkg/format"
)

var (
	edgesCount    int
	edgesShortest bool
)

var edgesCmd = &cobra.Command{
	Use:   "edges [file]",
	Short: "List the longest or shortest edges of a model",
	Long:  "Import a model file and list its edges ranked by length.",
	Args:  cobra.ExactArgs(1),
	Run:   runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges instead of longest")
}

func runEdges(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := format.Import(filename, cfg.Import.MinProbability)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing model: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeModel(model)

	var edges []analysis.EdgeInfo
	var title string
	if edgesShortest {
		edges = analysis.FindShortestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	} else {
		edges = analysis.FindLongestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total edges in model: %d\n", result.EdgeCount)
	fmt.Printf("Min edge length: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("Max edge length: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("Avg edge length: %.6f units\n\n", result.AvgEdgeLength)

	if len(edges) == 0 {
		fmt.Println("No edges found.")
		return
	}

	fmt.Printf("%-6s %-35s %-35s %-15s\n", "Index", "Start", "End", "Length")
	fmt.Println("-----------------------------------------------------------------------------------------------------------")
	for i, edge := range edges {
		fmt.Printf("%-6d %-35s %-35s %-15.6f\n",
			i+1,
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length)
	}
}
