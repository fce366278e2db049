package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	// Define root command
	rootCmd := &cobra.Command{
		Use:   "npage",
		Short: "A configuration-driven pagination engine for paged list APIs",
	}

	// Add subcommands
	rootCmd.AddCommand(
		NewFetchCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}
