// Package config provides configuration management for progressive-workflow.
//
// The configuration is a small JSON (or TOML) file in the working directory
// that names the workflows base directory.
package config

import (
	"fmt"
	"path/filepath"
)

const (
	// FileName is the JSON config file looked up in the working directory.
	FileName = ".progressive-workflow.json"

	// TOMLFileName is consulted when FileName does not exist.
	TOMLFileName = ".progressive-workflow.toml"

	// DefaultWorkflowsDir is used when nothing else names a directory.
	DefaultWorkflowsDir = "workflows"

	// EnvWorkflowsDir overrides the config file when set and non-empty.
	EnvWorkflowsDir = "PWF_WORKFLOWS_DIR"
)

// Config is the top-level configuration struct.
type Config struct {
	// WorkflowsDir is the workflows base directory, relative to the working
	// directory unless absolute.
	WorkflowsDir string `json:"workflowsDir" toml:"workflows_dir"`
}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	return &Config{
		WorkflowsDir: DefaultWorkflowsDir,
	}
}

// Validate checks the configuration for valid values.
func (c *Config) Validate() error {
	if c.WorkflowsDir == "" {
		return fmt.Errorf("workflowsDir cannot be empty")
	}
	return nil
}

// AbsWorkflowsDir resolves WorkflowsDir against cwd.
func (c *Config) AbsWorkflowsDir(cwd string) string {
	return absFrom(cwd, c.WorkflowsDir)
}

func absFrom(cwd, dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	if abs, err := filepath.Abs(filepath.Join(cwd, dir)); err == nil {
		return abs
	}
	return filepath.Join(cwd, dir)
}
