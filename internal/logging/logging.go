// Package logging sets up the JSON file logger. The terminal belongs to
// the dashboard while it runs, so logs always go to a file rather than
// stderr.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileLogger wraps a slog.Logger bound to an append-only log file.
type FileLogger struct {
	*slog.Logger
	file *os.File
}

// Open creates a JSON logger writing to path, creating parent directories
// as needed. An empty path returns a logger that discards everything.
func Open(path, level string) (*FileLogger, error) {
	if path == "" {
		return &FileLogger{Logger: slog.New(slog.DiscardHandler)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: parseLevel(level)})
	return &FileLogger{Logger: slog.New(handler), file: file}, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Close flushes and closes the log file.
func (l *FileLogger) Close() error {
	if l.file == nil {
		return nil
	}
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("sync log file: %w", err)
	}
	return l.file.Close()
}
