// Package testutil provides helper functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleWorkflowYAML is the definition of the "sample-workflow" fixture.
const SampleWorkflowYAML = `name: Sample Workflow
description: A sample workflow for testing
version: "1"
args:
  - name: TARGET_FILE
    description: The file to operate on
    required: true
  - name: OPTIONAL_FLAG
    description: An optional flag
    required: false
steps:
  - name: step1
    prompt: prompts/step1.md
  - name: step2
    prompt: prompts/step2.md
`

// SamplePrompts are the prompt files of the "sample-workflow" fixture.
var SamplePrompts = map[string]string{
	"prompts/step1.md": "This is step 1 for {{TARGET_FILE}}.\n",
	"prompts/step2.md": "This is step 2 with optional flag: {{OPTIONAL_FLAG}}.\n",
}

// TempDir creates a temporary directory and registers a cleanup function.
// The directory is automatically deleted when the test completes.
func TempDir(t *testing.T) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "pwf-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			t.Errorf("failed to cleanup temp dir %s: %v", dir, err)
		}
	})

	return dir
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// WriteWorkflow writes <baseDir>/<id>/workflow.yaml and the given prompt
// files (keyed by path relative to the workflow directory). It returns the
// workflow directory.
func WriteWorkflow(t *testing.T, baseDir, id, definition string, prompts map[string]string) string {
	t.Helper()

	dir := filepath.Join(baseDir, id)
	WriteFile(t, filepath.Join(dir, "workflow.yaml"), definition)
	for rel, content := range prompts {
		WriteFile(t, filepath.Join(dir, rel), content)
	}
	return dir
}

// SampleBaseDir creates a workflows base directory holding the
// "sample-workflow" fixture and returns it.
func SampleBaseDir(t *testing.T) string {
	t.Helper()

	base := TempDir(t)
	WriteWorkflow(t, base, "sample-workflow", SampleWorkflowYAML, SamplePrompts)
	return base
}
