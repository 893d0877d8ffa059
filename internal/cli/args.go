package cli

import (
	"github.com/spf13/cobra"

	"github.com/chazuruo/progressive-workflow/internal/workflows"
	"github.com/chazuruo/progressive-workflow/internal/workflows/store"
)

// NewArgsCommand creates the args command.
func NewArgsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "args <workflow_id> [base_dir]",
		Short: "Print the arguments a workflow expects",
		Long: `Print the argument declarations of a workflow as JSON.

Each entry has a name, a description and whether it is required.`,
		Args: rangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseDir, err := resolveBaseDir(optionalArg(args, 1))
			if err != nil {
				return err
			}

			list, err := workflows.NewService(store.New(baseDir)).Args(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), list)
		},
	}
}
