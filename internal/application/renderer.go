package application

import (
	"github.com/strugee/profanity/internal/domain"
	"github.com/strugee/profanity/internal/ports"
)

// Renderer paints timestamped, attributed text into a slot's buffer.
type Renderer struct {
	pool  *WindowPool
	clock ports.TimeFormatter
}

func NewRenderer(pool *WindowPool, clock ports.TimeFormatter) *Renderer {
	return &Renderer{pool: pool, clock: clock}
}

// WriteTimestampPrefix appends " [<time>] " with muted brackets.
func (r *Renderer) WriteTimestampPrefix(i domain.SlotIndex) error {
	buf, err := r.pool.buffer(i)
	if err != nil {
		return err
	}

	buf.Write(" [", domain.StyleMuted)
	buf.Write(r.clock.Now(), domain.StylePlain)
	buf.Write("] ", domain.StyleMuted)

	return nil
}

// WriteAttributedSender appends "<name> " with dim brackets and a bold name,
// coloured when highlighted.
func (r *Renderer) WriteAttributedSender(i domain.SlotIndex, name string, highlighted bool) error {
	buf, err := r.pool.buffer(i)
	if err != nil {
		return err
	}

	nameStyle := domain.StyleOutgoing
	if highlighted {
		nameStyle = domain.StyleIncoming
	}

	buf.Write("<", domain.StyleDim)
	buf.Write(name, nameStyle)
	buf.Write("> ", domain.StyleDim)

	return nil
}

func (r *Renderer) WriteLine(i domain.SlotIndex, text string) error {
	return r.WriteStyledLine(i, text, domain.StylePlain)
}

func (r *Renderer) WriteStyledLine(i domain.SlotIndex, text string, style domain.Style) error {
	buf, err := r.pool.buffer(i)
	if err != nil {
		return err
	}

	buf.Write(text, style)
	buf.Write("\n", domain.StylePlain)

	return nil
}
