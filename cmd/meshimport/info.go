package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/meshimport/pkg/analysis"
	"github.com/philipparndt/meshimport/pkg/format"
)

var infoMinProbability float64

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Import a model file and display its statistics",
	Long:  "Detect the file format, import the model and show dimensions, face count, surface area and edge statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().Float64Var(&infoMinProbability, "min-probability", 0,
		"Minimum detection confidence (overrides config)")
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	threshold := cfg.Import.MinProbability
	if cmd.Flags().Changed("min-probability") {
		threshold = infoMinProbability
	}

	model, err := format.Import(filename, threshold)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing model: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeModel(model)

	fmt.Println("Model Information")
	fmt.Println("====================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Meshes: %d\n", result.MeshCount)
	fmt.Printf("  Faces: %d\n", result.FaceCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	if result.FaceCount == 0 {
		fmt.Println("The model is empty.")
		return
	}

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n", result.BoundingBox.Diagonal())
	fmt.Printf("  Box Volume: %.6f cubic units\n\n", result.Volume)

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)
}
