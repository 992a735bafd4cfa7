package windows

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/strugee/profanity/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWindows() []application.WindowSnapshot {
	return []application.WindowSnapshot{
		{Slot: 0, Partner: "_cons", Lines: []string{" [12:00:00] Welcome to Profanity."}},
		{Slot: 1, Partner: "bob@example.org", Focused: true, Lines: []string{" [12:00:00] <bob@example.org> hi"}},
		{Slot: 2, Partner: "carol@example.org"},
	}
}

func TestRenderAllWindows(t *testing.T) {
	output, err := Render(sampleWindows(), RenderOptions{})
	require.NoError(t, err)

	output = ansi.Strip(output)
	assert.Contains(t, output, "Profanity windows")
	assert.Contains(t, output, "windows: 3")
	assert.Contains(t, output, "[F1] console")
	assert.Contains(t, output, "[F2] bob@example.org (focused)")
	assert.Contains(t, output, "<bob@example.org> hi")
	assert.Contains(t, output, "[F3] carol@example.org")
	assert.Contains(t, output, "(empty)")
	assert.NotContains(t, output, "_cons")
}

func TestRenderFocusedOnly(t *testing.T) {
	output, err := Render(sampleWindows(), RenderOptions{FocusedOnly: true})
	require.NoError(t, err)

	output = ansi.Strip(output)
	assert.Contains(t, output, "windows: 1")
	assert.Contains(t, output, "[F2] bob@example.org")
	assert.NotContains(t, output, "console")
	assert.NotContains(t, output, "carol")
}

func TestRenderNoWindows(t *testing.T) {
	output, err := Render(nil, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(output), "windows: 0")
}
