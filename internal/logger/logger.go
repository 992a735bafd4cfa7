package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

const (
	logFileMode = 0o600
	logDirMode  = 0o700
)

var (
	mu       sync.Mutex
	logFile  *os.File
	logPath  string
	levelVar = new(slog.LevelVar)
	base     = discard()
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Init opens path for appending and routes every logger from Get to it.
// The terminal UI owns stdout, so nothing is ever written there.
func Init(path string, level slog.Level) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		if path == logPath {
			levelVar.Set(level)
			return nil
		}
		_ = logFile.Close()
		logFile = nil
	}

	if err := os.MkdirAll(filepath.Dir(path), logDirMode); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}

	logFile = f
	logPath = path
	levelVar.Set(level)
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	base.Info("logger initialized", "path", path, "level", level.String())

	return nil
}

// Get returns the process logger; before Init it discards everything.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return base
}

// Component returns a logger tagged with the component name.
func Component(name string) *slog.Logger {
	return Get().With(slog.String("component", name))
}

func SetLevel(level slog.Level) {
	levelVar.Set(level)
}

// Close flushes and closes the log file; later calls to Get discard.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	base = discard()
	logPath = ""
	if logFile == nil {
		return nil
	}

	err := logFile.Close()
	logFile = nil
	if err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}
