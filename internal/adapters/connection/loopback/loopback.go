package loopback

import (
	"context"
	"errors"
	"sync"

	"github.com/strugee/profanity/internal/domain"
	"github.com/strugee/profanity/internal/ports"
)

const (
	defaultResource = "loopback"
	defaultBacklog  = 64
)

var (
	ErrBacklogFull = errors.New("incoming backlog full")
	ErrClosed      = errors.New("connection closed")
)

// Connection is an in-process stand-in for a chat server: every message
// sent to a partner comes straight back as if the partner had replied from
// the "loopback" resource.
type Connection struct {
	mu       sync.Mutex
	user     domain.PartnerID
	online   bool
	closed   bool
	resource string
	incoming chan ports.IncomingMessage
}

var _ ports.Connection = (*Connection)(nil)

type Option func(*Connection)

func WithBacklog(n int) Option {
	return func(c *Connection) {
		if n > 0 {
			c.incoming = make(chan ports.IncomingMessage, n)
		}
	}
}

func WithResource(resource string) Option {
	return func(c *Connection) {
		c.resource = resource
	}
}

func New(opts ...Option) *Connection {
	c := &Connection{
		resource: defaultResource,
		incoming: make(chan ports.IncomingMessage, defaultBacklog),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Connection) Connect(ctx context.Context, user domain.PartnerID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if user.IsEmpty() {
		return domain.ErrEmptyPartner
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.online {
		return domain.ErrAlreadyConnected
	}
	c.user = user
	c.online = true
	return nil
}

func (c *Connection) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.online {
		return domain.ErrNotConnected
	}
	c.online = false
	c.user = ""
	return nil
}

func (c *Connection) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.online
}

func (c *Connection) User() domain.PartnerID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// Send queues the echo without blocking; a full backlog is reported rather
// than stalling the UI loop.
func (c *Connection) Send(ctx context.Context, to domain.PartnerID, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if to.IsEmpty() {
		return domain.ErrEmptyPartner
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if !c.online {
		return domain.ErrNotConnected
	}

	from := domain.PartnerID(string(to.Bare()) + "/" + c.resource)
	select {
	case c.incoming <- ports.IncomingMessage{From: from, Body: body}:
		return nil
	default:
		return ErrBacklogFull
	}
}

// Incoming yields echoed messages until Close.
func (c *Connection) Incoming() <-chan ports.IncomingMessage {
	return c.incoming
}

func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.online = false
	close(c.incoming)
	return nil
}
