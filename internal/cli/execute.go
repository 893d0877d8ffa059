package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// Execute runs cmd and returns the process exit code. Failures are written
// to the command's stderr as JSON.
func Execute(cmd *cobra.Command) int {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err != nil {
		if code, ok := IsExitError(err); ok {
			return code
		}
		writeJSONError(cmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

// Standalone turns a subcommand into the root of its own binary named name.
func Standalone(name string, cmd *cobra.Command) *cobra.Command {
	usage := name
	if i := strings.IndexByte(cmd.Use, ' '); i >= 0 {
		usage += cmd.Use[i:]
	}
	cmd.Use = usage
	cmd.CompletionOptions.DisableDefaultCmd = true
	AddGlobalFlags(cmd)
	return cmd
}

// writeJSON pretty-prints v with two-space indentation.
func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// optionalArg returns args[i] or "" when absent.
func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
