package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/strugee/profanity/internal/ports"
)

// Forward drains a connection's incoming messages into the UI loop until the
// channel closes or ctx is done.
func Forward(ctx context.Context, in <-chan ports.IncomingMessage, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-in:
			if !ok {
				return
			}
			send(IncomingMsg(msg))
		}
	}
}
