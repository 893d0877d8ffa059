package errors_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	pwferrors "github.com/chazuruo/progressive-workflow/internal/errors"
)

// TestBaseErrors verifies that all base error types have correct messages.
func TestBaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNotFound", pwferrors.ErrNotFound, "not found"},
		{"ErrAlreadyExists", pwferrors.ErrAlreadyExists, "already exists"},
		{"ErrInvalid", pwferrors.ErrInvalid, "invalid"},
		{"ErrIO", pwferrors.ErrIO, "I/O error"},
		{"ErrWorkflowNotFound", pwferrors.ErrWorkflowNotFound, "workflow not found"},
		{"ErrNoSteps", pwferrors.ErrNoSteps, "workflow has no steps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestKindErrorsMatchBase verifies the workflow kinds match their base sentinel.
func TestKindErrorsMatchBase(t *testing.T) {
	tests := []struct {
		name string
		err  error
		base error
	}{
		{"workflow not found", pwferrors.ErrWorkflowNotFound, pwferrors.ErrNotFound},
		{"prompt not found", pwferrors.ErrPromptNotFound, pwferrors.ErrNotFound},
		{"catalog dir missing", pwferrors.ErrCatalogDirMissing, pwferrors.ErrNotFound},
		{"no steps", pwferrors.ErrNoSteps, pwferrors.ErrInvalid},
		{"out of range", pwferrors.ErrStepOutOfRange, pwferrors.ErrInvalid},
		{"config parse", pwferrors.ErrConfigParse, pwferrors.ErrInvalid},
		{"workflow parse", pwferrors.ErrWorkflowParse, pwferrors.ErrIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(wrapped, kind) = false")
			}
			if !errors.Is(wrapped, tt.base) {
				t.Errorf("errors.Is(wrapped, base) = false")
			}
		})
	}

	if errors.Is(pwferrors.ErrWorkflowNotFound, pwferrors.ErrPromptNotFound) {
		t.Error("distinct kinds should not match each other")
	}
}

// TestWorkflowError verifies WorkflowError formatting and unwrapping.
func TestWorkflowError(t *testing.T) {
	tests := []struct {
		name string
		err  *pwferrors.WorkflowError
		want string
	}{
		{
			name: "with ID",
			err:  &pwferrors.WorkflowError{Op: "load", Err: pwferrors.ErrWorkflowNotFound, ID: "review"},
			want: `workflow load "review": workflow not found`,
		},
		{
			name: "without ID",
			err:  &pwferrors.WorkflowError{Op: "catalog", Err: pwferrors.ErrInvalid},
			want: "workflow catalog: invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, tt.err.Err) {
				t.Errorf("errors.Is() should find the wrapped error")
			}
		})
	}
}

func TestStepRangeError(t *testing.T) {
	err := fmt.Errorf("get step: %w", &pwferrors.StepRangeError{Index: 99, Total: 2})

	if got := err.Error(); got != "get step: step index 99 out of range (0-1)" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, pwferrors.ErrStepOutOfRange) {
		t.Error("StepRangeError should match ErrStepOutOfRange")
	}
	se, ok := pwferrors.AsStepRangeError(err)
	if !ok {
		t.Fatal("AsStepRangeError() = false")
	}
	if se.Index != 99 || se.Total != 2 {
		t.Errorf("got Index=%d Total=%d", se.Index, se.Total)
	}
}

func TestConfigError(t *testing.T) {
	err := &pwferrors.ConfigError{Path: ".progressive-workflow.json", Err: pwferrors.ErrConfigParse}
	want := "config .progressive-workflow.json: failed to parse config"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	noPath := &pwferrors.ConfigError{Err: os.ErrPermission}
	if got := noPath.Error(); got != "config: permission denied" {
		t.Errorf("Error() = %q", got)
	}

	var ce *pwferrors.ConfigError
	if !errors.As(fmt.Errorf("load: %w", err), &ce) {
		t.Error("errors.As() should find wrapped ConfigError")
	}
}

func TestDirectoryErrorHint(t *testing.T) {
	err := fmt.Errorf("catalog: %w", &pwferrors.DirectoryError{Dir: "workflows", Err: pwferrors.ErrCatalogDirMissing})

	if !pwferrors.IsNotFound(err) {
		t.Error("IsNotFound() = false")
	}
	want := "Please create the directory 'workflows' and add workflow definitions."
	if got := pwferrors.Hint(err); got != want {
		t.Errorf("Hint() = %q, want %q", got, want)
	}
	if got := pwferrors.Hint(pwferrors.ErrInvalid); got != "" {
		t.Errorf("Hint() on plain error = %q, want empty", got)
	}
}

func TestWrap(t *testing.T) {
	if pwferrors.Wrap(nil, "op") != nil {
		t.Error("Wrap(nil) should be nil")
	}

	err := pwferrors.Wrap(pwferrors.ErrIO, "readPrompt")
	if got := err.Error(); got != "readPrompt: I/O error" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, pwferrors.ErrIO) {
		t.Error("errors.Is(err, ErrIO) = false")
	}
	if pwferrors.IsAlreadyExists(err) {
		t.Error("IsAlreadyExists() = true")
	}
}

func TestAsWorkflowError(t *testing.T) {
	inner := &pwferrors.WorkflowError{Op: "args", ID: "x", Err: pwferrors.ErrWorkflowNotFound}
	we, ok := pwferrors.AsWorkflowError(fmt.Errorf("cli: %w", inner))
	if !ok {
		t.Fatal("AsWorkflowError() = false")
	}
	if we.ID != "x" {
		t.Errorf("ID = %q", we.ID)
	}

	if _, ok := pwferrors.AsWorkflowError(pwferrors.ErrInvalid); ok {
		t.Error("AsWorkflowError() on sentinel should be false")
	}
}
