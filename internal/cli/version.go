package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// VersionInfo contains version information for the binary.
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go_version"`
}

// VersionOptions contains the options for the version command.
type VersionOptions struct {
	Short bool
	JSON  bool
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info VersionInfo) *cobra.Command {
	opts := &VersionOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long: `Display the pwf version information.

Shows version, commit hash, build date and Go version.`,
		Args: rangeArgs(0, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd, opts, info)
		},
	}

	cmd.Flags().BoolVar(&opts.Short, "short", false, "print only the version number")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "output in JSON format")

	return cmd
}

func runVersion(cmd *cobra.Command, opts *VersionOptions, info VersionInfo) error {
	if info.Go == "" {
		info.Go = runtime.Version()
	}
	out := cmd.OutOrStdout()

	if opts.JSON {
		return writeJSON(out, info)
	}

	if opts.Short {
		fmt.Fprintln(out, info.Version)
		return nil
	}

	fmt.Fprintf(out, "pwf version %s\n", info.Version)
	fmt.Fprintf(out, "commit: %s\n", info.Commit)
	fmt.Fprintf(out, "built at: %s\n", info.Date)
	fmt.Fprintf(out, "go version: %s\n", info.Go)

	return nil
}
