package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/meshimport/pkg/analysis"
	"github.com/philipparndt/meshimport/pkg/format"
	"github.com/philipparndt/meshimport/pkg/watcher"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-import a model file whenever it changes",
	Long:  "Watch a model file and print fresh statistics after every save, until interrupted.",
	Args:  cobra.ExactArgs(1),
	Run:   runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond,
		"Quiet period before reacting to a change")
}

func runWatch(cmd *cobra.Command, args []string) {
	filename := args[0]

	report := func(path string) {
		model, err := format.Import(path, cfg.Import.MinProbability)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing model: %v\n", err)
			return
		}
		result := analysis.AnalyzeModel(model)
		fmt.Printf("%s: %d faces, %.6f square units, %s x %s x %s\n",
			path,
			result.FaceCount,
			result.SurfaceArea,
			analysis.FormatMeasurement(result.Dimensions.X, ""),
			analysis.FormatMeasurement(result.Dimensions.Y, ""),
			analysis.FormatMeasurement(result.Dimensions.Z, ""))
	}

	fw, err := watcher.New(watchDebounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating watcher: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	if err := fw.Watch(filename, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error watching file: %v\n", err)
		os.Exit(1)
	}

	// Initial import before the first change.
	report(filename)
	fmt.Println("Watching for changes. Press Ctrl+C to stop.")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}
