// Package cli wires the tick command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/eleven-am/tick/internal/logger"
)

// Version is the release version reported by the version command.
const Version = "0.1.0"

// Global configuration variables
var (
	configFile string
	listenAddr string
	debug      bool
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tick",
		Short: "tick - a minimal to-do list service",
		Long: `tick serves a personal to-do list over HTTP, backed by a single
relational table. Items are created, listed, partially updated and deleted
through a small JSON API.`,
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetDebug(debug)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: tick.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
