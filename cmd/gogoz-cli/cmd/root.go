package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gogoz-cli",
	Short: "GOGO'Z site tool",
	Long: `gogoz-cli inspects the content behind the GOGO'Z site.

Available commands:
  content validate   Check a content file against the site schema
  content list       Summarise the navigation, services and testimonials
  version            Print the version

Use "gogoz-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
