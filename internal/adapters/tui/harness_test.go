package tui

import (
	"context"
	"testing"
	"time"

	"github.com/strugee/profanity/internal/adapters/clock"
	"github.com/strugee/profanity/internal/adapters/connection/loopback"
	"github.com/strugee/profanity/internal/adapters/terminal"
	"github.com/strugee/profanity/internal/application"
	"github.com/strugee/profanity/internal/domain"
	"github.com/stretchr/testify/require"
)

const testTitle = "Profanity. Type /help for help information."

type harness struct {
	svc        *application.Service
	screen     *terminal.Screen
	title      *TitleBar
	status     *StatusBar
	input      *InputLine
	conn       *loopback.Connection
	dispatcher *Dispatcher
}

func newHarness(t *testing.T, opts ...application.Option) *harness {
	t.Helper()

	palette := terminal.MonochromePalette()
	formatter := clock.NewFormatter(clock.Fixed{At: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)}, "")
	screen := terminal.NewScreen(terminal.WithPalette(palette), terminal.WithSize(80, 24))
	title := NewTitleBar(palette, testTitle)
	status := NewStatusBar(palette, formatter)
	input := NewInputLine()

	opts = append([]application.Option{application.WithInputLine(input)}, opts...)
	svc := application.NewService(screen, status, title, formatter, opts...)
	require.NoError(t, svc.Initialize())

	conn := loopback.New()
	t.Cleanup(func() { _ = conn.Close() })

	return &harness{
		svc:        svc,
		screen:     screen,
		title:      title,
		status:     status,
		input:      input,
		conn:       conn,
		dispatcher: NewDispatcher(svc, conn, nil),
	}
}

func (h *harness) connect(t *testing.T) {
	t.Helper()
	require.NoError(t, h.conn.Connect(context.Background(), "me@example.org"))
}

func (h *harness) lines(slot domain.SlotIndex) []string {
	for _, w := range h.svc.Snapshot() {
		if w.Slot == slot {
			return w.Lines
		}
	}
	return nil
}

func (h *harness) lastConsoleLine() string {
	lines := h.lines(domain.ConsoleSlot)
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}
