package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/meshimport/internal/config"
	"github.com/philipparndt/meshimport/internal/logger"
	"github.com/philipparndt/meshimport/version"
)

var (
	configPath string
	logLevel   string
	logFile    string

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "meshimport",
	Short: "Detect and import 3D model files",
	Long: `meshimport inspects 3D model files, estimates their format and imports them
into a generic triangle-mesh model for analysis. Detection is probabilistic:
every known format scores the file and the most confident importer wins.`,
	Version: version.GetFullVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		if cmd.Flags().Changed("log-level") {
			cfg.Logging.Level = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.Logging.File = logFile
		}
		logger.Init(cfg.Logging.Level, cfg.Logging.File)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a yaml config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also log to this file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
