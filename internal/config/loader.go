package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	pwferrors "github.com/chazuruo/progressive-workflow/internal/errors"
	"github.com/chazuruo/progressive-workflow/internal/logger"
)

// DetectConfigPath returns the config file in dir, or "" if there is none.
//
// Search order:
// 1. <dir>/.progressive-workflow.json
// 2. <dir>/.progressive-workflow.toml
func DetectConfigPath(dir string) string {
	for _, name := range []string{FileName, TOMLFileName} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Decode reads the config file at path over the defaults.
// Errors are *errors.ConfigError wrapping ErrConfigParse or the I/O failure.
func Decode(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &pwferrors.ConfigError{Path: path, Err: err}
	}

	cfg := DefaultConfig()
	if strings.HasSuffix(path, ".toml") {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, &pwferrors.ConfigError{
			Path: path,
			Err:  fmt.Errorf("%w: %v", pwferrors.ErrConfigParse, err),
		}
	}

	// An explicit empty value means "not configured".
	if strings.TrimSpace(cfg.WorkflowsDir) == "" {
		cfg.WorkflowsDir = DefaultWorkflowsDir
	}
	return cfg, nil
}

// Load loads the config found in cwd. It never fails: a missing file yields
// the defaults silently, an unreadable or malformed one yields the defaults
// with a warning. Environment overrides are applied last.
func Load(cwd string) *Config {
	cfg := DefaultConfig()

	if path := DetectConfigPath(cwd); path != "" {
		loaded, err := Decode(path)
		if err != nil {
			logger.L().Warn("failed to load config, using defaults", "path", path, "err", err)
		} else {
			cfg = loaded
		}
	}

	applyEnvOverrides(cfg)
	return cfg
}

// ResolveWorkflowsDir returns the absolute workflows base directory.
//
// Resolution order:
// 1. explicit (a command-line argument), when non-empty
// 2. $PWF_WORKFLOWS_DIR
// 3. the config file in cwd
// 4. DefaultWorkflowsDir
//
// Relative results are resolved against cwd.
func ResolveWorkflowsDir(explicit, cwd string) string {
	if explicit != "" {
		return absFrom(cwd, explicit)
	}
	return Load(cwd).AbsWorkflowsDir(cwd)
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(c *Config) {
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			*target = val
		}
	}

	applyString(EnvWorkflowsDir, &c.WorkflowsDir)
}
