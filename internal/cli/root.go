// Package cli provides the command-line interface for zedref.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for zedref
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zedref",
		Short: "Generate a settings reference for the Zed editor",
		Long: `zedref downloads Zed's default settings, flattens the nested JSONC
document into dotted setting paths with inferred types and categories, and
writes an ordered YAML reference document.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("zedref %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built: %s\n", buildDate)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewValidateCmd())

	return rootCmd
}
