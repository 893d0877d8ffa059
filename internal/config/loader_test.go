package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pwferrors "github.com/chazuruo/progressive-workflow/internal/errors"
	"github.com/chazuruo/progressive-workflow/internal/logger"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// captureLog redirects the global logger for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.Init("warn")
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

// TestLoad_NoConfig tests that defaults are returned when no config exists.
func TestLoad_NoConfig(t *testing.T) {
	t.Setenv(EnvWorkflowsDir, "")
	logs := captureLog(t)

	cfg := Load(t.TempDir())
	if cfg.WorkflowsDir != "workflows" {
		t.Errorf("expected workflowsDir 'workflows', got %q", cfg.WorkflowsDir)
	}
	if logs.Len() != 0 {
		t.Errorf("missing config should not warn, got %q", logs.String())
	}
}

// TestLoad_CustomWorkflowsDir tests loading workflowsDir from the JSON file.
func TestLoad_CustomWorkflowsDir(t *testing.T) {
	t.Setenv(EnvWorkflowsDir, "")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `{"workflowsDir": ".claude/workflows"}`)

	cfg := Load(dir)
	if cfg.WorkflowsDir != ".claude/workflows" {
		t.Errorf("expected '.claude/workflows', got %q", cfg.WorkflowsDir)
	}
}

// TestLoad_PartialConfig tests that an empty object keeps the defaults.
func TestLoad_PartialConfig(t *testing.T) {
	t.Setenv(EnvWorkflowsDir, "")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `{}`)

	cfg := Load(dir)
	if cfg.WorkflowsDir != "workflows" {
		t.Errorf("expected 'workflows', got %q", cfg.WorkflowsDir)
	}
}

func TestLoad_EmptyValueKeepsDefault(t *testing.T) {
	t.Setenv(EnvWorkflowsDir, "")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `{"workflowsDir": "  "}`)

	if cfg := Load(dir); cfg.WorkflowsDir != "workflows" {
		t.Errorf("expected 'workflows', got %q", cfg.WorkflowsDir)
	}
}

// TestLoad_InvalidJSON tests that a malformed file warns and falls back.
func TestLoad_InvalidJSON(t *testing.T) {
	t.Setenv(EnvWorkflowsDir, "")
	logs := captureLog(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `{"workflowsDir": `)

	cfg := Load(dir)
	if cfg.WorkflowsDir != "workflows" {
		t.Errorf("expected fallback 'workflows', got %q", cfg.WorkflowsDir)
	}
	if !strings.Contains(logs.String(), "failed to load config") {
		t.Errorf("expected a warning, got %q", logs.String())
	}
}

func TestDecode_InvalidJSONIsConfigParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	writeFile(t, path, `not json`)

	_, err := Decode(path)
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *pwferrors.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if ce.Path != path {
		t.Errorf("Path = %q, want %q", ce.Path, path)
	}
	if !pwferrors.IsInvalid(err) {
		t.Error("expected error to match ErrInvalid via ErrConfigParse")
	}
}

func TestLoad_TOML(t *testing.T) {
	t.Setenv(EnvWorkflowsDir, "")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, TOMLFileName), `workflows_dir = "prompts/flows"`)

	if cfg := Load(dir); cfg.WorkflowsDir != "prompts/flows" {
		t.Errorf("expected 'prompts/flows', got %q", cfg.WorkflowsDir)
	}
}

func TestLoad_JSONWinsOverTOML(t *testing.T) {
	t.Setenv(EnvWorkflowsDir, "")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `{"workflowsDir": "from-json"}`)
	writeFile(t, filepath.Join(dir, TOMLFileName), `workflows_dir = "from-toml"`)

	if cfg := Load(dir); cfg.WorkflowsDir != "from-json" {
		t.Errorf("expected 'from-json', got %q", cfg.WorkflowsDir)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `{"workflowsDir": "from-file"}`)
	t.Setenv(EnvWorkflowsDir, "from-env")

	if cfg := Load(dir); cfg.WorkflowsDir != "from-env" {
		t.Errorf("expected 'from-env', got %q", cfg.WorkflowsDir)
	}
}

func TestResolveWorkflowsDir(t *testing.T) {
	t.Setenv(EnvWorkflowsDir, "")
	dir := t.TempDir()

	got := ResolveWorkflowsDir("", dir)
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}
	if filepath.Base(got) != "workflows" {
		t.Errorf("expected path ending in 'workflows', got %q", got)
	}

	writeFile(t, filepath.Join(dir, FileName), `{"workflowsDir": "custom"}`)
	if got := ResolveWorkflowsDir("", dir); filepath.Base(got) != "custom" {
		t.Errorf("expected config value, got %q", got)
	}

	if got := ResolveWorkflowsDir("explicit", dir); got != filepath.Join(dir, "explicit") {
		t.Errorf("expected explicit dir, got %q", got)
	}

	abs := filepath.Join(t.TempDir(), "elsewhere")
	if got := ResolveWorkflowsDir(abs, dir); got != abs {
		t.Errorf("expected %q, got %q", abs, got)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Setenv(EnvWorkflowsDir, "")
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", FileName)

	if err := Write(path, &Config{WorkflowsDir: ".claude/workflows"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	cfg, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if cfg.WorkflowsDir != ".claude/workflows" {
		t.Errorf("round trip got %q", cfg.WorkflowsDir)
	}

	if err := Write(path, &Config{}); err == nil {
		t.Error("expected validation error for empty workflowsDir")
	}
}
