// Package store resolves workflow definitions and prompt files on disk.
//
// A workflows base directory holds one subdirectory per workflow:
//
//	<baseDir>/<id>/workflow.yaml
//	<baseDir>/<id>/<prompt paths referenced by workflow.yaml>
package store

import "context"

// DefinitionFile is the name of the definition inside a workflow directory.
const DefinitionFile = "workflow.yaml"

// Store defines the interface for workflow file access.
type Store interface {
	// BaseDir returns the workflows base directory.
	BaseDir() string

	// ReadDefinition returns the raw workflow.yaml of workflow id.
	ReadDefinition(ctx context.Context, id string) ([]byte, error)

	// ReadPrompt returns a prompt file, rel being relative to the workflow
	// directory.
	ReadPrompt(ctx context.Context, id, rel string) ([]byte, error)

	// List returns every workflow directory in directory-listing order.
	List(ctx context.Context) ([]WorkflowRef, error)

	// Create writes a new workflow directory containing files, keyed by
	// path relative to the workflow directory.
	Create(ctx context.Context, id string, files map[string][]byte) (WorkflowRef, error)
}
