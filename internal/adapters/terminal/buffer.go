package terminal

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/x/ansi"
	"github.com/strugee/profanity/internal/domain"
	"github.com/strugee/profanity/internal/ports"
)

const scrollbackLimit = 1000

// Buffer is a scrollable window surface: styled lines behind a viewport.
// Content written after the last newline stays on the pending line.
type Buffer struct {
	screen   *Screen
	lines    []string
	pending  strings.Builder
	viewport viewport.Model
	dirty    bool
}

var _ ports.Buffer = (*Buffer)(nil)

func newBuffer(s *Screen) *Buffer {
	vp := viewport.New(s.width, s.BodyHeight())
	vp.SetContent("")
	return &Buffer{screen: s, viewport: vp}
}

func (b *Buffer) Write(text string, style domain.Style) {
	for i, part := range strings.Split(text, "\n") {
		if i > 0 {
			b.newline()
		}
		if part != "" {
			b.pending.WriteString(b.screen.palette.Render(style, part))
		}
	}
	b.dirty = true
}

func (b *Buffer) newline() {
	b.lines = append(b.lines, b.pending.String())
	b.pending.Reset()
	if over := len(b.lines) - scrollbackLimit; over > 0 {
		b.lines = append([]string(nil), b.lines[over:]...)
	}
}

func (b *Buffer) Clear() {
	b.lines = nil
	b.pending.Reset()
	b.viewport.SetContent("")
	b.viewport.GotoTop()
	b.dirty = false
}

// Repaint pushes the buffer to the screen body, following the tail when the
// view was already at the bottom.
func (b *Buffer) Repaint() {
	if b.dirty {
		follow := b.viewport.AtBottom()
		b.viewport.SetContent(b.content())
		if follow {
			b.viewport.GotoBottom()
		}
		b.dirty = false
	}
	b.screen.present(b.viewport.View())
}

func (b *Buffer) Scroll(delta int) {
	b.viewport.SetYOffset(b.viewport.YOffset + delta)
}

// Lines returns the buffer text with styling stripped.
func (b *Buffer) Lines() []string {
	raw := b.rawLines()
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, ansi.Strip(line))
	}
	return lines
}

func (b *Buffer) rawLines() []string {
	raw := b.lines
	if b.pending.Len() > 0 {
		raw = append(append([]string(nil), b.lines...), b.pending.String())
	}
	return raw
}

func (b *Buffer) content() string {
	return strings.Join(b.rawLines(), "\n")
}

func (b *Buffer) resize(width, height int) {
	b.viewport.Width = width
	b.viewport.Height = height
	b.dirty = true
}
