// Package logging provides a thin, structured logging wrapper used by
// the distribute/recover pipeline to report progress and failures.
package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger wraps a slog.Logger with the small set of helpers the
// pipeline actually calls.
type Logger struct {
	logger *slog.Logger
	debug  bool
}

// New creates a logger writing text-formatted records to stderr. When
// debug is true, debug-level records are emitted too.
func New(debug bool) *Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{logger: slog.New(handler), debug: debug}
}

// Info logs an informational message with structured attributes.
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Debug logs a debug message with structured attributes, when enabled.
func (l *Logger) Debug(msg string, args ...any) {
	if l.debug {
		l.logger.Debug(msg, args...)
	}
}

// Warn logs a warning message with structured attributes.
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs err under msg with structured attributes.
func (l *Logger) Error(msg string, err error, args ...any) {
	l.logger.Error(msg, append([]any{"error", err}, args...)...)
}

// Errorf formats a message and logs it at error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}
