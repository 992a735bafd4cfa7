package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	scriptPath, err := writeScriptFixture(home)
	require.NoError(t, err)

	stdout, stderr, err := runProfanity(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)

	stdout, stderr, err = runProfanity(t, binaryPath, home, "replay", scriptPath, "--time", "2024-03-01T09:30:00Z")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "[F2] alice@example.org (focused)")
	assert.Contains(t, stdout, " [09:30:00] <alice@example.org> ping")
	assert.Contains(t, stdout, " [09:30:00] Session replayed.")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "profanity-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/profanity")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build profanity binary: %s", string(output))
	return binaryPath
}

func runProfanity(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "PROFANITY_LOG_FILE="+filepath.Join(home, "profanity.log"))

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeScriptFixture(home string) (string, error) {
	script := `version = 1
user = "me@example.org"

[[events]]
kind = "incoming"
from = "alice@example.org/laptop"
body = "ping"

[[events]]
kind = "switch"
window = 2

[[events]]
kind = "console"
tone = "good"
body = "Session replayed."
`

	path := filepath.Join(home, "session.toml")
	return path, os.WriteFile(path, []byte(script), 0o644)
}
