package terminal

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/strugee/profanity/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferWriteSplitsLines(t *testing.T) {
	t.Parallel()

	s := NewScreen()
	b := s.NewBuffer()

	b.Write(" [", domain.StyleMuted)
	b.Write("12:00:00", domain.StylePlain)
	b.Write("] ", domain.StyleMuted)
	b.Write("hello\nworld", domain.StyleBold)
	b.Write("\n", domain.StylePlain)
	b.Write("pending", domain.StylePlain)

	assert.Equal(t, []string{" [12:00:00] hello", "world", "pending"}, b.Lines())
}

func TestBufferClearEmptiesContent(t *testing.T) {
	t.Parallel()

	s := NewScreen()
	b := s.NewBuffer()
	b.Write("one\ntwo\n", domain.StylePlain)

	b.Clear()
	b.Repaint()

	assert.Empty(t, b.Lines())
	assert.NotContains(t, ansi.Strip(s.Body()), "one")
}

func TestBufferScrollbackIsBounded(t *testing.T) {
	t.Parallel()

	b := NewScreen().NewBuffer()
	for i := 0; i < scrollbackLimit+25; i++ {
		b.Write(fmt.Sprintf("line %d\n", i), domain.StylePlain)
	}

	lines := b.Lines()
	require.Len(t, lines, scrollbackLimit)
	assert.Equal(t, "line 25", lines[0])
	assert.Equal(t, fmt.Sprintf("line %d", scrollbackLimit+24), lines[len(lines)-1])
}

func TestRepaintPresentsOnlyThatBuffer(t *testing.T) {
	t.Parallel()

	s := NewScreen(WithSize(40, 10))
	first := s.NewBuffer()
	second := s.NewBuffer()
	first.Write("console text\n", domain.StylePlain)
	second.Write("chat text\n", domain.StylePlain)

	second.Repaint()
	body := ansi.Strip(s.Body())
	assert.Contains(t, body, "chat text")
	assert.NotContains(t, body, "console text")

	first.Repaint()
	assert.Contains(t, ansi.Strip(s.Body()), "console text")
}

func TestRepaintAutoScrollsToNewestLine(t *testing.T) {
	t.Parallel()

	s := NewScreen(WithSize(40, 8))
	b := s.NewBuffer()
	for i := 0; i < 30; i++ {
		b.Write(fmt.Sprintf("message %02d\n", i), domain.StylePlain)
	}

	b.Repaint()

	body := ansi.Strip(s.Body())
	assert.Contains(t, body, "message 29")
	assert.NotContains(t, body, "message 00")
	assert.LessOrEqual(t, len(strings.Split(body, "\n")), s.BodyHeight())
}

func TestScrollBackStopsFollowingTail(t *testing.T) {
	t.Parallel()

	s := NewScreen(WithSize(40, 8))
	raw := s.NewBuffer()
	for i := 0; i < 30; i++ {
		raw.Write(fmt.Sprintf("message %02d\n", i), domain.StylePlain)
	}
	raw.Repaint()

	b := raw.(*Buffer)
	b.Scroll(-100)
	b.Repaint()
	assert.Contains(t, ansi.Strip(s.Body()), "message 00")

	b.Write("message 30\n", domain.StylePlain)
	b.Repaint()
	assert.NotContains(t, ansi.Strip(s.Body()), "message 30")

	b.Scroll(100)
	b.Repaint()
	assert.Contains(t, ansi.Strip(s.Body()), "message 30")
}

func TestScreenResizeKeepsChromeRows(t *testing.T) {
	t.Parallel()

	s := NewScreen()
	b := s.NewBuffer().(*Buffer)

	s.Resize(100, 30)

	assert.Equal(t, 100, s.Width())
	assert.Equal(t, 27, s.BodyHeight())
	assert.Equal(t, 27, b.viewport.Height)
	assert.Equal(t, 100, b.viewport.Width)

	s.Resize(10, 2)
	assert.Equal(t, 1, s.BodyHeight())
}

func TestScreenInitWithoutTerminalKeepsDefaults(t *testing.T) {
	t.Parallel()

	s := NewScreen()
	require.NoError(t, s.Init())
	require.NoError(t, s.Init())

	assert.Equal(t, DefaultWidth, s.Width())
	assert.Equal(t, DefaultHeight-chromeRows, s.BodyHeight())
	require.NoError(t, s.Close())
	assert.Empty(t, s.Body())
}

func TestPaletteAppliesAttributes(t *testing.T) {
	t.Parallel()

	p := DefaultPalette()

	bold := p.Style(domain.StyleGood)
	assert.True(t, bold.GetBold())
	assert.Equal(t, colorGreen, bold.GetForeground())

	dim := p.Style(domain.StyleDim)
	assert.True(t, dim.GetFaint())

	bar := p.Pair(domain.ColorInverse)
	assert.Equal(t, colorBlue, bar.GetBackground())

	assert.Equal(t, "text", ansi.Strip(p.Render(domain.StyleBad, "text")))
}

func TestMonochromePaletteHasNoColours(t *testing.T) {
	t.Parallel()

	p := MonochromePalette()

	assert.Equal(t, "x", p.Render(domain.StylePlain, "x"))
	assert.True(t, p.Pair(domain.ColorInverse).GetReverse())
}
