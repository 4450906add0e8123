// Package logging builds the application's slog logger. The TUI owns the
// terminal, so records go to a file rather than stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// New opens (or creates) the log file at path and returns a text logger
// writing to it. When the file cannot be opened the logger discards
// everything; a missing log must never stop the timer.
func New(path string, level slog.Level) (*slog.Logger, io.Closer) {
	if path == "" {
		return Discard(), nopCloser{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Discard(), nopCloser{}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return Discard(), nopCloser{}
	}
	return NewWriter(f, level), f
}

// NewWriter returns a text logger writing to w.
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
