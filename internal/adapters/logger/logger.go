// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/rab/internal/core/ports"
)

// messager is implemented by zerr errors, which report their own message
// without the wrapped chain.
type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	mu     sync.RWMutex
}

// New creates a Logger writing human-readable records to stderr.
func New() ports.Logger {
	return NewWriter(os.Stderr)
}

// NewWriter creates a Logger writing to w at info level.
func NewWriter(w io.Writer) *Logger {
	level := new(slog.LevelVar)
	return &Logger{
		logger: slog.New(NewPrettyHandler(w, &slog.HandlerOptions{Level: level})),
		level:  level,
	}
}

// SetOutput redirects the logger to w, keeping the current level.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(NewPrettyHandler(w, &slog.HandlerOptions{Level: l.level}))
}

// SetQuiet drops info records when quiet is set.
func (l *Logger) SetQuiet(quiet bool) {
	if quiet {
		l.level.Set(slog.LevelWarn)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its zerr chain rendered one cause per line.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the chain while errors report their own message.
// The first error that does not ends the walk with its full Error() text.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error()})
			break
		}
		entry := errorEntry{message: m.Message()}
		if md, ok := current.(metadataer); ok {
			entry.metadata = md.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}
	return entries
}

func formatErrorEntries(entries []errorEntry) string {
	var b strings.Builder
	for i, entry := range entries {
		lines := strings.Split(entry.message, "\n")
		indent := "       "
		switch i {
		case 0:
			b.WriteString("Error: " + lines[0])
		case 1:
			b.WriteString("\n\n  Caused by:\n    → " + lines[0])
			indent = "      "
		default:
			b.WriteString("\n    → " + lines[0])
			indent = "      "
		}
		for _, line := range lines[1:] {
			b.WriteString("\n" + indent + line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.metadata)) {
			b.WriteString("\n" + indent + key + ": " + fmt.Sprint(entry.metadata[key]))
		}
	}
	return b.String()
}
