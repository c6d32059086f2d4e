// Copyright © 2025 Slipway Authors

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the slipway version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("slipway", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
