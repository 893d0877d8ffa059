package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the pwf command with every subcommand mounted.
func NewRootCommand(info VersionInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pwf",
		Short: "Progressive-disclosure prompt workflows",
		Long: `pwf hands an agent one workflow step at a time.

A workflow is a directory holding a workflow.yaml and one prompt file per
step. Callers ask for a step by index and never see the other steps' prompts.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date),
		Args:    rangeArgs(0, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddGlobalFlags(rootCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(NewPromptCommand())
	rootCmd.AddCommand(NewArgsCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewViewCommand())
	rootCmd.AddCommand(NewNewCommand())
	rootCmd.AddCommand(NewInitCommand())
	rootCmd.AddCommand(NewVersionCommand(info))

	return rootCmd
}
