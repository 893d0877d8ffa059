// Package errors provides the error kinds returned by the workflow accessors.
//
// Library code returns these errors unformatted; only the CLI boundary turns
// them into JSON and an exit status.
//
// # Error Types
//
// Base errors (sentinel errors):
//   - ErrNotFound - resource not found
//   - ErrAlreadyExists - duplicate resource
//   - ErrInvalid - validation failed
//   - ErrIO - file I/O error
//
// Workflow errors (sentinels, the not-found kinds also match ErrNotFound):
//   - ErrWorkflowNotFound - <baseDir>/<id>/workflow.yaml does not exist
//   - ErrNoSteps - the workflow declares no steps
//   - ErrStepOutOfRange - the requested step index is outside 0..N-1
//   - ErrPromptNotFound - the step's prompt file does not exist
//   - ErrCatalogDirMissing - the workflows base directory does not exist
//   - ErrConfigParse - the config file could not be decoded
//   - ErrWorkflowParse - a workflow.yaml could not be read
//
// Wrapped error types (add context):
//   - WorkflowError{Op, ID, Err} - accessor errors for one workflow
//   - StepRangeError{Index, Total} - out-of-range step request
//   - ConfigError{Path, Err} - configuration errors
//   - DirectoryError{Dir, Err} - base directory errors, carries a hint
//
// # Usage
//
//	return &errors.WorkflowError{Op: "load", ID: id, Err: errors.ErrWorkflowNotFound}
//
//	if errors.IsNotFound(err) {
//	    // handle not found
//	}
package errors

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = baseError("not found")

	// ErrAlreadyExists indicates a duplicate resource.
	ErrAlreadyExists = baseError("already exists")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")

	// ErrIO indicates a file I/O error.
	ErrIO = baseError("I/O error")
)

// Workflow error kinds.
var (
	ErrWorkflowNotFound  = kindError{msg: "workflow not found", base: ErrNotFound}
	ErrPromptNotFound    = kindError{msg: "prompt file not found", base: ErrNotFound}
	ErrCatalogDirMissing = kindError{msg: "workflows directory not found", base: ErrNotFound}
	ErrNoSteps           = kindError{msg: "workflow has no steps", base: ErrInvalid}
	ErrStepOutOfRange    = kindError{msg: "step index out of range", base: ErrInvalid}
	ErrConfigParse       = kindError{msg: "failed to parse config", base: ErrInvalid}
	ErrWorkflowParse     = kindError{msg: "failed to parse workflow", base: ErrIO}
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// kindError is a sentinel that also matches a broader base error.
type kindError struct {
	msg  string
	base error
}

func (e kindError) Error() string { return e.msg }

func (e kindError) Is(target error) bool { return target == e.base }

// WorkflowError represents an error that occurred while accessing one workflow.
type WorkflowError struct {
	// Op is the operation being performed (e.g., "load", "step", "args").
	Op string
	// ID is the workflow identifier (optional).
	ID string
	// Err is the underlying error.
	Err error
}

func (e *WorkflowError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("workflow %s %q: %s", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("workflow %s: %s", e.Op, e.Err)
}

func (e *WorkflowError) Unwrap() error { return e.Err }

// StepRangeError reports a step index outside 0..Total-1.
type StepRangeError struct {
	Index int
	Total int
}

func (e *StepRangeError) Error() string {
	return fmt.Sprintf("step index %d out of range (0-%d)", e.Index, e.Total-1)
}

func (e *StepRangeError) Unwrap() error { return ErrStepOutOfRange }

// ConfigError represents an error related to configuration.
type ConfigError struct {
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// DirectoryError reports a problem with the workflows base directory.
type DirectoryError struct {
	Dir string
	Err error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("workflows directory not found: %s", e.Dir)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// Hint suggests how to fix the error.
func (e *DirectoryError) Hint() string {
	return fmt.Sprintf("Please create the directory '%s' and add workflow definitions.", e.Dir)
}

// Wrap adds context to an error by wrapping it with an operation name.
// The returned error implements Unwrap() allowing errors.Is and errors.As
// to work with the wrapped error.
func Wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{op: op, err: err}
}

// wrappedError is an error with an operation context.
type wrappedError struct {
	op  string
	err error
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.op, e.err) }
func (e *wrappedError) Unwrap() error { return e.err }

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists reports whether err is or wraps ErrAlreadyExists.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// AsWorkflowError reports whether err can be typed as a *WorkflowError.
func AsWorkflowError(err error) (*WorkflowError, bool) {
	var we *WorkflowError
	if errors.As(err, &we) {
		return we, true
	}
	return nil, false
}

// AsStepRangeError reports whether err can be typed as a *StepRangeError.
func AsStepRangeError(err error) (*StepRangeError, bool) {
	var se *StepRangeError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// Hint returns the hint carried by err, if any.
func Hint(err error) string {
	var h interface{ Hint() string }
	if errors.As(err, &h) {
		return h.Hint()
	}
	return ""
}
