package clock

import (
	"time"

	"github.com/strugee/profanity/internal/ports"
)

const DefaultLayout = "15:04:05"

// Formatter renders the clock's current time with a fixed layout.
type Formatter struct {
	clock  ports.Clock
	layout string
}

var _ ports.TimeFormatter = (*Formatter)(nil)

func NewFormatter(clock ports.Clock, layout string) *Formatter {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if layout == "" {
		layout = DefaultLayout
	}

	return &Formatter{clock: clock, layout: layout}
}

func (f *Formatter) Now() string {
	return f.clock.Now().Format(f.layout)
}

// Fixed is a clock pinned to one instant, used for deterministic replays.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}
