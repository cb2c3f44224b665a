// Package cli implements the nconsole command line.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "nconsole",
		Short:         "Route text to a swappable console transport",
		Long:          `nconsole pipes text through the nconsole registry to stdout, stderr, a device file or nowhere.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./nconsole.yaml)")

	root.AddCommand(newPipeCmd(&cfgFile))
	root.AddCommand(newLevelsCmd())
	return root
}

// Execute executes the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
