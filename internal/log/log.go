// Package log provides logging functionality for the robson binaries.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Logger defines the interface for logging operations.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps slog.Logger to implement our Logger interface.
type SlogAdapter struct {
	logger *slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) {
	s.logger.Debug(msg, args...)
}

// Info logs an info message.
func (s *SlogAdapter) Info(msg string, args ...any) {
	s.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) {
	s.logger.Warn(msg, args...)
}

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) {
	s.logger.Error(msg, args...)
}

// NewLogger creates a text logger writing to w. Only warnings and errors are
// emitted unless verbose is set.
func NewLogger(w io.Writer, verbose bool) Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	return &SlogAdapter{logger: slog.New(slog.NewTextHandler(w, opts))}
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return NewLogger(io.Discard, false)
}

var defaultLogger Logger

// GetLogger returns the process-wide logger. Before Init is called it logs
// warnings to stderr.
func GetLogger() Logger {
	if defaultLogger == nil {
		defaultLogger = NewLogger(os.Stderr, false)
	}
	return defaultLogger
}

// Init configures the process-wide logger. Logs always go to stderr so that
// stdout stays reserved for command output.
func Init(verbose bool) {
	defaultLogger = NewLogger(os.Stderr, verbose)
}

