// Package logger provides the process-wide structured logger.
//
// Output goes to stderr so that stdout carries nothing but command results.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvLevel names the environment variable holding the default level.
const EnvLevel = "PWF_LOG_LEVEL"

// Logger is the logger type handed out by L.
type Logger = *log.Logger

var (
	mu     sync.Mutex
	global Logger
)

// Init replaces the global logger with one at the given level.
func Init(level string) {
	mu.Lock()
	defer mu.Unlock()
	global = New(os.Stderr, level)
}

// L returns the global logger, creating a warn-level one on first use.
func L() Logger {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		global = New(os.Stderr, os.Getenv(EnvLevel))
	}
	return global
}

// SetOutput redirects the global logger, mainly for tests.
func SetOutput(w io.Writer) {
	L().SetOutput(w)
}

// New builds a logger writing to w. Unknown levels fall back to warn.
func New(w io.Writer, level string) Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Prefix:          "pwf",
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel maps a level name onto a log level.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
