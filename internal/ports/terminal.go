package ports

import "github.com/strugee/profanity/internal/domain"

// Terminal owns the physical screen and hands out fixed-size scrollable buffers.
type Terminal interface {
	Init() error
	Close() error
	NewBuffer() Buffer
}

// Buffer is an opaque scrollable text surface owned by exactly one window slot.
type Buffer interface {
	Write(text string, style domain.Style)
	Clear()
	Repaint()
	Lines() []string
}
