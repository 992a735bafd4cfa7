package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/strugee/profanity/internal/application"
	"github.com/strugee/profanity/internal/domain"
	"github.com/strugee/profanity/internal/ports"
)

// Dispatcher interprets lines typed at the prompt.
type Dispatcher struct {
	svc    *application.Service
	conn   ports.Connection
	logger *slog.Logger
}

func NewDispatcher(svc *application.Service, conn ports.Connection, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{svc: svc, conn: conn, logger: logger}
}

// Handle runs one input line and reports whether the client should quit.
func (d *Dispatcher) Handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if !strings.HasPrefix(line, "/") {
		d.handleText(ctx, line)
		return false
	}

	name := strings.Fields(line)[0]
	d.logger.Debug("command", "name", name)

	switch name {
	case "/quit":
		return true
	case "/help":
		d.svc.ConsoleHelp()
	case "/close":
		d.handleClose(line)
	case "/connect":
		d.handleConnect(ctx, line)
	case "/msg":
		d.handleMsg(ctx, line)
	default:
		d.svc.ConsoleBadCommand(line)
	}

	return false
}

func (d *Dispatcher) handleText(ctx context.Context, line string) {
	if !d.svc.IsCurrentAChat() {
		d.svc.ConsoleBadCommand(line)
		return
	}
	d.send(ctx, d.svc.CurrentPartnerID(), line)
}

func (d *Dispatcher) handleClose(line string) {
	if !d.svc.IsCurrentAChat() {
		d.svc.ConsoleBadCommand(line)
		return
	}
	if err := d.svc.CloseFocused(); err != nil {
		d.svc.ConsoleBad(fmt.Sprintf("Could not close window: %v", err))
	}
}

func (d *Dispatcher) handleConnect(ctx context.Context, line string) {
	if d.conn.Connected() {
		d.svc.ConsoleAlreadyConnected()
		return
	}

	args := strings.Fields(line)
	if len(args) != 2 || !strings.Contains(args[1], "@") {
		d.svc.ConsoleBadConnectUsage()
		return
	}

	user := domain.PartnerID(args[1])
	if err := d.conn.Connect(ctx, user); err != nil {
		if errors.Is(err, domain.ErrAlreadyConnected) {
			d.svc.ConsoleAlreadyConnected()
			return
		}
		d.logger.Warn("connect failed", "user", user, "error", err)
		d.svc.ConsoleBad(fmt.Sprintf("Login failed: %v", err))
		return
	}

	d.logger.Info("connected", "user", user)
	d.svc.ConsoleGood(fmt.Sprintf("Logged in as %s", user))
}

func (d *Dispatcher) handleMsg(ctx context.Context, line string) {
	if !d.conn.Connected() {
		d.svc.ConsoleNotConnected()
		return
	}

	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 3 || strings.TrimSpace(parts[1]) == "" || strings.TrimSpace(parts[2]) == "" {
		d.svc.ConsoleBadMessageUsage()
		return
	}

	d.send(ctx, domain.PartnerID(strings.TrimSpace(parts[1])), strings.TrimSpace(parts[2]))
}

func (d *Dispatcher) send(ctx context.Context, to domain.PartnerID, body string) {
	if err := d.conn.Send(ctx, to, body); err != nil {
		if errors.Is(err, domain.ErrNotConnected) {
			d.svc.ConsoleNotConnected()
			return
		}
		d.logger.Warn("send failed", "to", to, "error", err)
		d.svc.ConsoleBad(fmt.Sprintf("Could not send to %s: %v", to, err))
		return
	}

	if _, err := d.svc.ShowOutgoing(d.conn.User(), to, body); err != nil {
		d.svc.ConsoleBad(fmt.Sprintf("Could not open a window for %s: %v", to, err))
	}
}
