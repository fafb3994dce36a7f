// Package log wraps log/slog with the verbosity levels used by the CLI
// flags (-v, -vv, -vvv).
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Verbosity levels
const (
	LevelQuiet = iota // default: warnings and errors
	LevelInfo         // -v: dataset loads, selection changes
	LevelDebug        // -vv: recomputation passes, config resolution
	LevelTrace        // -vvv: per-column and per-row detail
)

const slogLevelTrace = slog.Level(-8)

var (
	verbosity int
	logger    *slog.Logger
)

// Initialize sets up the package logger for the given verbosity, writing
// to w. Passing io.Discard silences everything, which the TUI does while
// it owns the terminal.
func Initialize(level int, w io.Writer) {
	verbosity = level
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slogLevel(level),
	}))
}

func slogLevel(level int) slog.Level {
	switch {
	case level >= LevelTrace:
		return slogLevelTrace
	case level >= LevelDebug:
		return slog.LevelDebug
	case level >= LevelInfo:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// Info logs at info level (-v).
func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

// Debug logs at debug level (-vv).
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Trace logs at trace level (-vvv).
func Trace(msg string, args ...any) {
	logger.Log(context.Background(), slogLevelTrace, msg, args...)
}

// Warn logs at warn level (always visible unless discarded).
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

// Error logs at error level (always visible unless discarded).
func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

// IsDebug returns true if debug-level logging is enabled.
func IsDebug() bool {
	return verbosity >= LevelDebug
}

// Verbosity returns the current verbosity level.
func Verbosity() int {
	return verbosity
}

// Logger returns the underlying slog logger.
func Logger() *slog.Logger {
	return logger
}

func init() {
	Initialize(LevelQuiet, os.Stderr)
}
