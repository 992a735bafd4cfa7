package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/strugee/profanity/internal/domain"
	"github.com/strugee/profanity/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *harness) {
	t.Helper()

	h := newHarness(t)
	app := NewApp(context.Background(), AppConfig{
		Service:    h.svc,
		Screen:     h.screen,
		Title:      h.title,
		Status:     h.status,
		Input:      h.input,
		Dispatcher: h.dispatcher,
		Tick:       time.Hour,
	})
	return app, h
}

func typeLine(app *App, line string) tea.Cmd {
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestAppViewShowsChrome(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	require.NotNil(t, app.Init())

	view := ansi.Strip(app.View())
	rows := strings.Split(view, "\n")

	assert.True(t, strings.HasPrefix(rows[0], " "+testTitle))
	assert.Contains(t, view, "Welcome to Profanity.")
	assert.Contains(t, view, "[09:30:00]")
	assert.True(t, strings.HasPrefix(rows[len(rows)-1], inputPrompt))
}

func TestAppFunctionKeysSwitchWindows(t *testing.T) {
	t.Parallel()

	app, h := newTestApp(t)
	app.Update(IncomingMsg(ports.IncomingMessage{From: "bob@example.org/phone", Body: "hi"}))

	app.Update(tea.KeyMsg{Type: tea.KeyF2})
	assert.Equal(t, domain.SlotIndex(1), h.svc.Focused())
	assert.Equal(t, "bob@example.org", h.title.Text())
	assert.Contains(t, ansi.Strip(app.View()), "<bob@example.org> hi")

	app.Update(tea.KeyMsg{Type: tea.KeyF5})
	assert.Equal(t, domain.SlotIndex(4), h.svc.Focused())
	assert.Equal(t, testTitle, h.title.Text())

	app.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, domain.ConsoleSlot, h.svc.Focused())
}

func TestAppIncomingMarksStatusBar(t *testing.T) {
	t.Parallel()

	app, h := newTestApp(t)
	app.Update(IncomingMsg(ports.IncomingMessage{From: "bob@example.org", Body: "hi"}))

	assert.True(t, h.status.IsActive(1))
	assert.Contains(t, ansi.Strip(h.status.View()), "[2]")
	assert.NotContains(t, ansi.Strip(h.status.View()), "[3]")
}

func TestAppSubmitRunsCommands(t *testing.T) {
	t.Parallel()

	app, h := newTestApp(t)

	assert.Nil(t, typeLine(app, "/connect me@example.org"))
	assert.True(t, h.conn.Connected())
	assert.Empty(t, h.input.Take())

	typeLine(app, "/msg bob@example.org hello")
	assert.Equal(t, []string{" [09:30:00] <me@example.org> hello"}, h.lines(1))
}

func TestAppQuits(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	cmd = typeLine(app, "/quit")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppResizeReflowsBars(t *testing.T) {
	t.Parallel()

	app, h := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	assert.Equal(t, 40, h.screen.Width())
	assert.Equal(t, 7, h.screen.BodyHeight())
	assert.Equal(t, 40, ansi.StringWidth(h.title.View()))
	assert.Equal(t, 40, ansi.StringWidth(h.status.View()))
}

func TestForwardDeliversUntilClosed(t *testing.T) {
	t.Parallel()

	in := make(chan ports.IncomingMessage, 2)
	in <- ports.IncomingMessage{From: "bob@example.org", Body: "one"}
	in <- ports.IncomingMessage{From: "bob@example.org", Body: "two"}
	close(in)

	var got []tea.Msg
	Forward(context.Background(), in, func(msg tea.Msg) { got = append(got, msg) })

	require.Len(t, got, 2)
	assert.Equal(t, IncomingMsg{From: "bob@example.org", Body: "two"}, got[1])
}

func TestForwardStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	Forward(ctx, make(chan ports.IncomingMessage), func(tea.Msg) {
		t.Fatal("unexpected message")
	})
}
