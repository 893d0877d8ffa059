package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chazuruo/progressive-workflow/internal/config"
	pwferrors "github.com/chazuruo/progressive-workflow/internal/errors"
	"github.com/chazuruo/progressive-workflow/internal/logger"
)

// InitOptions contains the options for the init command.
type InitOptions struct {
	Force bool
	Mkdir bool
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a " + config.FileName + " in the current directory",
		Long: `Write the project configuration file so every command resolves the
same workflows directory. The recorded directory is the global
--workflows-dir value, or "` + config.DefaultWorkflowsDir + `" when unset.

Examples:
  pwf init
  pwf init --workflows-dir .claude/workflows --mkdir`,
		Args: rangeArgs(0, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite an existing config file")
	cmd.Flags().BoolVar(&opts.Mkdir, "mkdir", false, "also create the workflows directory")

	return cmd
}

func runInit(cmd *cobra.Command, opts *InitOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	path := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(path); err == nil && !opts.Force {
		return &pwferrors.ConfigError{Path: path, Err: fmt.Errorf("%w (use --force to overwrite)", pwferrors.ErrAlreadyExists)}
	}

	cfg := config.DefaultConfig()
	if dir := GetWorkflowsDir(); dir != "" {
		cfg.WorkflowsDir = dir
	}
	if err := config.Write(path, cfg); err != nil {
		return err
	}
	logger.L().Info("wrote config", "path", path)

	if opts.Mkdir {
		if err := os.MkdirAll(cfg.AbsWorkflowsDir(cwd), 0755); err != nil {
			return fmt.Errorf("failed to create workflows directory: %w", err)
		}
	}

	return writeJSON(cmd.OutOrStdout(), cfg)
}
