// Package cli provides global state and utilities for CLI commands.
package cli

import (
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/chazuruo/progressive-workflow/internal/config"
	"github.com/chazuruo/progressive-workflow/internal/logger"
)

var (
	// LogLevel is the level set by the global --log-level flag.
	// Empty means the PWF_LOG_LEVEL environment variable decides.
	LogLevel string

	// WorkflowsDir is the base directory set by the global --workflows-dir
	// flag. A positional base_dir argument takes precedence.
	WorkflowsDir string

	// globalMutex protects the globals above for concurrent access.
	globalMutex sync.RWMutex
)

// AddGlobalFlags adds global flags to a command and initializes logging
// before any subcommand runs.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&LogLevel, "log-level", "",
		"log level: debug, info, warn or error (default warn, or $"+logger.EnvLevel+")")
	cmd.PersistentFlags().StringVar(&WorkflowsDir, "workflows-dir", "",
		"workflows base directory (default from $"+config.EnvWorkflowsDir+", "+config.FileName+" or \""+config.DefaultWorkflowsDir+"\")")

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if level := GetLogLevel(); level != "" {
			logger.Init(level)
		}
		logger.SetOutput(cmd.ErrOrStderr())
	}
}

// GetLogLevel returns the level requested on the command line.
func GetLogLevel() string {
	globalMutex.RLock()
	defer globalMutex.RUnlock()
	return LogLevel
}

// GetWorkflowsDir returns the base directory requested on the command line.
func GetWorkflowsDir() string {
	globalMutex.RLock()
	defer globalMutex.RUnlock()
	return WorkflowsDir
}

// resolveBaseDir picks the workflows base directory for a command: the
// positional argument, then --workflows-dir, then the config chain.
func resolveBaseDir(positional string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	explicit := positional
	if explicit == "" {
		explicit = GetWorkflowsDir()
	}
	return config.ResolveWorkflowsDir(explicit, cwd), nil
}
