package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/meshimport/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the meshimport version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("meshimport %s\n", version.GetFullVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
