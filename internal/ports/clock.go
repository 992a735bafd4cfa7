package ports

import "time"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// TimeFormatter produces the display-ready timestamp written before each line.
type TimeFormatter interface {
	Now() string
}
