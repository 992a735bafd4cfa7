package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/strugee/profanity/internal/adapters/clock"
	"github.com/strugee/profanity/internal/adapters/connection/loopback"
	"github.com/strugee/profanity/internal/adapters/terminal"
	"github.com/strugee/profanity/internal/adapters/tui"
	"github.com/strugee/profanity/internal/application"
	"github.com/strugee/profanity/internal/ports"
)

func runUI(ctx context.Context, a *app) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	palette := terminal.DefaultPalette()
	if os.Getenv("NO_COLOR") != "" {
		palette = terminal.MonochromePalette()
	}

	formatter := clock.NewFormatter(ports.SystemClock{}, a.cfg.UI.TimestampFormat)
	screen := terminal.NewScreen(terminal.WithPalette(palette), terminal.WithOutput(os.Stdout))
	title := tui.NewTitleBar(palette, a.cfg.UI.Title)
	status := tui.NewStatusBar(palette, formatter)
	input := tui.NewInputLine()

	opts := append(a.serviceOptions("windows"), application.WithInputLine(input))
	svc := application.NewService(screen, status, title, formatter, opts...)
	if err := svc.Initialize(); err != nil {
		return fmt.Errorf("initialize windows: %w", err)
	}
	defer func() {
		if err := svc.Shutdown(); err != nil {
			a.logger.Warn("shutdown windows", "error", err)
		}
	}()

	conn := loopback.New()
	defer func() { _ = conn.Close() }()

	uiLogger := a.logger.With(slog.String("component", "tui"))
	model := tui.NewApp(ctx, tui.AppConfig{
		Service:    svc,
		Screen:     screen,
		Title:      title,
		Status:     status,
		Input:      input,
		Dispatcher: tui.NewDispatcher(svc, conn, uiLogger),
		Tick:       a.cfg.UI.Tick,
		Logger:     uiLogger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	go tui.Forward(ctx, conn.Incoming(), p.Send)

	a.logger.Info("ui started", "policy", a.cfg.Windows.OnFull)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	a.logger.Info("ui stopped")

	return nil
}
