package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/progressive-workflow/internal/config"
	"github.com/chazuruo/progressive-workflow/internal/logger"
)

// runCommand executes cmd with args and captures its output streams.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv(config.EnvWorkflowsDir, "")
	logger.Init("warn")
	t.Cleanup(func() { logger.Init("warn") })

	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	code = Execute(cmd)
	return out.String(), errOut.String(), code
}

// runPwf runs the full pwf command tree.
func runPwf(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	return runCommand(t, NewRootCommand(VersionInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"}), args...)
}

// decodeError parses the JSON error object written to stderr.
func decodeError(t *testing.T, stderr string) errorPayload {
	t.Helper()
	var payload errorPayload
	require.NoError(t, json.Unmarshal([]byte(stderr), &payload), "stderr: %q", stderr)
	return payload
}
