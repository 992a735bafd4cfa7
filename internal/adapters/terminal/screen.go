package terminal

import (
	"os"

	"github.com/strugee/profanity/internal/ports"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// Rows taken by the title bar, status bar and input line.
	chromeRows = 3
)

// Screen is the physical display shared by every window buffer. Only the
// last repainted buffer is visible in the body.
type Screen struct {
	palette Palette
	output  *os.File
	width   int
	height  int
	buffers []*Buffer
	body    string
	open    bool
}

var _ ports.Terminal = (*Screen)(nil)

type Option func(*Screen)

func WithPalette(p Palette) Option {
	return func(s *Screen) {
		s.palette = p
	}
}

// WithOutput sets the file probed for the terminal size on Init.
func WithOutput(f *os.File) Option {
	return func(s *Screen) {
		s.output = f
	}
}

func WithSize(width, height int) Option {
	return func(s *Screen) {
		s.width = width
		s.height = height
	}
}

func NewScreen(opts ...Option) *Screen {
	s := &Screen{
		palette: DefaultPalette(),
		width:   DefaultWidth,
		height:  DefaultHeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Screen) Init() error {
	if s.open {
		return nil
	}

	if s.output != nil {
		fd := int(s.output.Fd())
		if term.IsTerminal(fd) {
			if width, height, err := term.GetSize(fd); err == nil && width > 0 && height > 0 {
				s.Resize(width, height)
			}
		}
	}

	s.open = true
	return nil
}

func (s *Screen) Close() error {
	s.open = false
	s.body = ""
	return nil
}

func (s *Screen) NewBuffer() ports.Buffer {
	b := newBuffer(s)
	s.buffers = append(s.buffers, b)
	return b
}

func (s *Screen) Resize(width, height int) {
	s.width = width
	s.height = height
	for _, b := range s.buffers {
		b.resize(width, s.BodyHeight())
	}
}

func (s *Screen) Width() int {
	return s.width
}

func (s *Screen) BodyHeight() int {
	return max(s.height-chromeRows, 1)
}

func (s *Screen) Palette() Palette {
	return s.palette
}

// Body is the most recently repainted window.
func (s *Screen) Body() string {
	return s.body
}

func (s *Screen) present(view string) {
	s.body = view
}
