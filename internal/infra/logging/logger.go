// Package logging provides file-based run logging for pkgcheck.
// Entries go to the run log (.pkgcheck/logs/pkgcheck.log) and, when they
// belong to a step, also to that step's log (.pkgcheck/logs/step-<name>.log).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/runoshun/pkgcheck/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger appends leveled entries to log files under a state directory.
// Files are opened on first use and kept open until Close.
type Logger struct {
	files    map[string]*os.File // by path
	now      func() time.Time
	stateDir string
	mu       sync.Mutex
	level    slog.Level
}

// New creates a Logger that writes under stateDir.
// An empty stateDir disables logging.
func New(stateDir string, level slog.Level) *Logger {
	return &Logger{
		files:    make(map[string]*os.File),
		now:      time.Now,
		stateDir: stateDir,
		level:    level,
	}
}

// ParseLevel parses a [log] level value. Unknown values mean info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Info logs an info message.
func (l *Logger) Info(step, category, msg string) { l.write(slog.LevelInfo, step, category, msg) }

// Debug logs a debug message.
func (l *Logger) Debug(step, category, msg string) { l.write(slog.LevelDebug, step, category, msg) }

// Warn logs a warning message.
func (l *Logger) Warn(step, category, msg string) { l.write(slog.LevelWarn, step, category, msg) }

// Error logs an error message.
func (l *Logger) Error(step, category, msg string) { l.write(slog.LevelError, step, category, msg) }

func (l *Logger) write(level slog.Level, step, category, msg string) {
	if l.stateDir == "" || level < l.level {
		return
	}

	scope := step
	if scope == "" {
		scope = "rule"
	}
	entry := fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n", l.now().Format(timeLayout), level, scope, category, msg)

	paths := []string{domain.GlobalLogPath(l.stateDir)}
	if step != "" {
		paths = append(paths, domain.StepLogPath(l.stateDir, step))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, path := range paths {
		f, err := l.file(path)
		if err != nil {
			continue // best effort
		}
		_, _ = io.WriteString(f, entry)
	}
}

// file returns the open file for path, opening it for append if needed.
// The caller holds l.mu.
func (l *Logger) file(path string) (*os.File, error) {
	if f, ok := l.files[path]; ok {
		return f, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.files[path] = f
	return f, nil
}

// Close closes every open log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lastErr error
	for path, f := range l.files {
		if err := f.Close(); err != nil {
			lastErr = err
		}
		delete(l.files, path)
	}
	return lastErr
}
