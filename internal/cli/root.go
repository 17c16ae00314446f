// Package cli implements the ppoom command-line interface using Cobra.
// Each subcommand works directly against the local data directory; the
// serve command runs the background daemon with the HTTP API.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ppoom",
	Short: "ppoom — your pocket fatigue companion",
	Long: `ppoom tracks your daily fatigue, hands you small recovery missions,
and grows a tiny companion character as you complete them.

Everything stays on this machine. No accounts, no sync, no cloud.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
