package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/strugee/profanity/internal/adapters/terminal"
	"github.com/strugee/profanity/internal/domain"
	"github.com/strugee/profanity/internal/ports"
)

// StatusBar shows the clock and one marker per window; windows with unseen
// activity are highlighted.
type StatusBar struct {
	palette  terminal.Palette
	clock    ports.TimeFormatter
	active   [domain.SlotCount]bool
	width    int
	rendered string
}

var _ ports.StatusIndicator = (*StatusBar)(nil)

func NewStatusBar(palette terminal.Palette, clock ports.TimeFormatter) *StatusBar {
	return &StatusBar{palette: palette, clock: clock, width: terminal.DefaultWidth}
}

func (s *StatusBar) SetActive(slot domain.SlotIndex) {
	if slot.Valid() {
		s.active[slot] = true
	}
}

func (s *StatusBar) SetInactive(slot domain.SlotIndex) {
	if slot.Valid() {
		s.active[slot] = false
	}
}

func (s *StatusBar) IsActive(slot domain.SlotIndex) bool {
	return slot.Valid() && s.active[slot]
}

func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

func (s *StatusBar) Refresh() {
	bar := s.palette.Pair(domain.ColorInverse)
	marker := s.palette.Pair(domain.ColorActive).Bold(true)

	left := " [" + s.clock.Now() + "]"

	var markers []string
	plainWidth := 0
	for i := domain.ConsoleSlot; i <= domain.LastChatSlot; i++ {
		label := "[" + i.Label() + "]"
		plainWidth += runewidth.StringWidth(label)
		if s.active[i] {
			markers = append(markers, marker.Render(label))
			continue
		}
		markers = append(markers, bar.Render(strings.Repeat(" ", runewidth.StringWidth(label))))
	}

	gap := s.width - runewidth.StringWidth(left) - plainWidth
	if gap < 1 {
		s.rendered = bar.Render(fitWidth(left, s.width))
		return
	}

	s.rendered = lipgloss.JoinHorizontal(lipgloss.Top,
		bar.Render(left+strings.Repeat(" ", gap)),
		strings.Join(markers, ""),
	)
}

func (s *StatusBar) View() string {
	return s.rendered
}
