// Package cmd implements the CLI commands for the negotiator server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "negotiator",
	Short: "Auto-negotiate Vinted offers",
	Long:  "An API-first service that evaluates incoming Vinted offers against per-seller negotiation rules, scores buyers and listing urgency, and automatically accepts, rejects, or counters on the seller's behalf.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
