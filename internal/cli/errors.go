package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	pwferrors "github.com/chazuruo/progressive-workflow/internal/errors"
)

// ExitError represents a command failure that has already been reported
// and only needs an exit code.
//
// RunE functions return it instead of calling os.Exit so that tests can
// assert on exit codes. [Execute] turns it into the process status.
type ExitError struct {
	// Code is the exit code to return to the shell.
	Code int
}

// Error implements the error interface in the os/exec "exit status N" format.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitError creates an [ExitError] with the given exit code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// IsExitError checks if an error is an [ExitError] and extracts its exit code.
func IsExitError(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}

// errorPayload is the JSON object written to stderr on failure.
type errorPayload struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

// writeJSONError writes err as a single-line JSON object.
func writeJSONError(w io.Writer, err error) {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(errorPayload{Error: err.Error(), Hint: pwferrors.Hint(err)})
}

// usageError reports a malformed invocation of cmd.
func usageError(cmd *cobra.Command, reason string) error {
	msg := "usage: " + cmd.UseLine()
	if reason != "" {
		msg = reason + "; " + msg
	}
	return fmt.Errorf("%w: %s", pwferrors.ErrInvalid, msg)
}

// rangeArgs is cobra.RangeArgs with a usage message instead of cobra's.
func rangeArgs(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < min || len(args) > max {
			return usageError(cmd, "")
		}
		return nil
	}
}
