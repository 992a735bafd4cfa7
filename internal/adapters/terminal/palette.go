package terminal

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/strugee/profanity/internal/domain"
)

// ANSI indexes of the basic terminal colours in use.
const (
	colorRed   = lipgloss.Color("1")
	colorGreen = lipgloss.Color("2")
	colorBlue  = lipgloss.Color("4")
	colorCyan  = lipgloss.Color("6")
	colorWhite = lipgloss.Color("7")
)

// Palette maps the fixed colour pairs onto lipgloss styles. Black
// backgrounds are left to the terminal default.
type Palette struct {
	pairs map[domain.ColorPair]lipgloss.Style
}

func DefaultPalette() Palette {
	return Palette{pairs: map[domain.ColorPair]lipgloss.Style{
		domain.ColorDefault:     lipgloss.NewStyle(),
		domain.ColorPlain:       lipgloss.NewStyle().Foreground(colorWhite),
		domain.ColorAffirmative: lipgloss.NewStyle().Foreground(colorGreen),
		domain.ColorInverse:     lipgloss.NewStyle().Foreground(colorWhite).Background(colorBlue),
		domain.ColorActive:      lipgloss.NewStyle().Foreground(colorCyan).Background(colorBlue),
		domain.ColorMuted:       lipgloss.NewStyle().Foreground(colorCyan),
		domain.ColorError:       lipgloss.NewStyle().Foreground(colorRed),
	}}
}

// MonochromePalette drops every colour and keeps only bold/dim attributes.
func MonochromePalette() Palette {
	pairs := make(map[domain.ColorPair]lipgloss.Style, 7)
	for _, pair := range []domain.ColorPair{
		domain.ColorDefault, domain.ColorPlain, domain.ColorAffirmative, domain.ColorInverse,
		domain.ColorActive, domain.ColorMuted, domain.ColorError,
	} {
		pairs[pair] = lipgloss.NewStyle()
	}
	pairs[domain.ColorInverse] = lipgloss.NewStyle().Reverse(true)
	pairs[domain.ColorActive] = lipgloss.NewStyle().Reverse(true).Bold(true)
	return Palette{pairs: pairs}
}

func (p Palette) Style(s domain.Style) lipgloss.Style {
	style, ok := p.pairs[s.Color]
	if !ok {
		style = lipgloss.NewStyle()
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Dim {
		style = style.Faint(true)
	}
	return style
}

func (p Palette) Render(s domain.Style, text string) string {
	return p.Style(s).Render(text)
}

// Pair returns the bare style of a colour pair, used by the title and status bars.
func (p Palette) Pair(pair domain.ColorPair) lipgloss.Style {
	if style, ok := p.pairs[pair]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
