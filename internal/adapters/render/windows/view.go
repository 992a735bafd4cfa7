package windows

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/strugee/profanity/internal/application"
	"github.com/strugee/profanity/internal/domain"
)

type RenderOptions struct {
	// FocusedOnly limits the output to the focused window.
	FocusedOnly bool
}

func renderView(windows []application.WindowSnapshot, opts RenderOptions, s styles) string {
	if opts.FocusedOnly {
		windows = focusedWindows(windows)
	}

	lines := []string{
		s.title.Render("Profanity windows"),
		s.header.Render(fmt.Sprintf("windows: %d", len(windows))),
	}

	for _, w := range windows {
		lines = append(lines, s.section.Render(renderWindow(w, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func focusedWindows(windows []application.WindowSnapshot) []application.WindowSnapshot {
	for _, w := range windows {
		if w.Focused {
			return []application.WindowSnapshot{w}
		}
	}
	return nil
}

func renderWindow(w application.WindowSnapshot, s styles) string {
	parts := []string{windowTitle(w, s)}

	if len(w.Lines) == 0 {
		parts = append(parts, s.empty.Render("(empty)"))
	}
	for _, line := range w.Lines {
		parts = append(parts, s.line.Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func windowTitle(w application.WindowSnapshot, s styles) string {
	name := string(w.Partner)
	if w.Slot.IsConsole() {
		name = "console"
	}

	title := s.window.Render(fmt.Sprintf("[%s] %s", windowLabel(w.Slot), name))
	if !w.Focused {
		return title
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", s.focused.Render("(focused)"))
}

func windowLabel(slot domain.SlotIndex) string {
	return "F" + slot.Label()
}
