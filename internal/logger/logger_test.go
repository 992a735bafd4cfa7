package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger(t *testing.T, level slog.Level) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "logs", "profanity.log")
	require.NoError(t, Init(path, level))
	t.Cleanup(func() { _ = Close() })
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestGetDiscardsBeforeInit(t *testing.T) {
	require.NoError(t, Close())

	logger := Get()
	require.NotNil(t, logger)
	logger.Info("nowhere")
}

func TestInitWritesToFile(t *testing.T) {
	path := setupTestLogger(t, slog.LevelInfo)

	Component("windows").Info("window evicted", "slot", 3)

	content := readLog(t, path)
	assert.Contains(t, content, "logger initialized")
	assert.Contains(t, content, "component=windows")
	assert.Contains(t, content, "slot=3")
}

func TestLevelFiltersDebug(t *testing.T) {
	path := setupTestLogger(t, slog.LevelInfo)

	Get().Debug("hidden-debug-line")
	SetLevel(slog.LevelDebug)
	Get().Debug("visible-debug-line")

	content := readLog(t, path)
	assert.NotContains(t, content, "hidden-debug-line")
	assert.Contains(t, content, "visible-debug-line")
}

func TestCloseStopsWriting(t *testing.T) {
	path := setupTestLogger(t, slog.LevelInfo)

	require.NoError(t, Close())
	Get().Info("after-close")
	require.NoError(t, Close())

	assert.NotContains(t, readLog(t, path), "after-close")
}

func TestInitFailsOnUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := Init(filepath.Join(blocker, "profanity.log"), slog.LevelInfo)
	require.Error(t, err)
}
