package tui

import (
	"github.com/mattn/go-runewidth"
	"github.com/strugee/profanity/internal/adapters/terminal"
	"github.com/strugee/profanity/internal/domain"
	"github.com/strugee/profanity/internal/ports"
)

// TitleBar is the inverse bar on the top row. It shows the application
// title on the console and the partner id in chat windows.
type TitleBar struct {
	palette  terminal.Palette
	appTitle string
	text     string
	width    int
	rendered string
}

var _ ports.TitleIndicator = (*TitleBar)(nil)

func NewTitleBar(palette terminal.Palette, appTitle string) *TitleBar {
	return &TitleBar{
		palette:  palette,
		appTitle: appTitle,
		text:     appTitle,
		width:    terminal.DefaultWidth,
	}
}

func (t *TitleBar) ShowTitle() {
	t.text = t.appTitle
}

func (t *TitleBar) ShowName(partner domain.PartnerID) {
	t.text = string(partner)
}

func (t *TitleBar) SetWidth(width int) {
	t.width = width
}

func (t *TitleBar) Text() string {
	return t.text
}

func (t *TitleBar) Refresh() {
	t.rendered = t.palette.Pair(domain.ColorInverse).Render(fitWidth(" "+t.text, t.width))
}

func (t *TitleBar) View() string {
	return t.rendered
}

// fitWidth truncates or pads s to exactly width terminal cells.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
