package ports

import (
	"context"

	"github.com/strugee/profanity/internal/domain"
)

// Connection is the chat transport seen by the input layer.
type Connection interface {
	Connect(ctx context.Context, user domain.PartnerID) error
	Disconnect() error
	Connected() bool
	User() domain.PartnerID
	Send(ctx context.Context, to domain.PartnerID, body string) error
}

// IncomingMessage is delivered by a Connection for routing into a chat window.
type IncomingMessage struct {
	From domain.PartnerID
	Body string
}
