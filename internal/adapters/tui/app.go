package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/strugee/profanity/internal/adapters/terminal"
	"github.com/strugee/profanity/internal/application"
	"github.com/strugee/profanity/internal/domain"
	"github.com/strugee/profanity/internal/ports"
)

const scrollStep = 5

// IncomingMsg carries a message received by the connection into the UI loop.
type IncomingMsg ports.IncomingMessage

type tickMsg time.Time

// App is the root bubbletea model. Every call into the session controller
// happens inside Update, so the controller only ever sees one goroutine.
type App struct {
	ctx        context.Context
	svc        *application.Service
	screen     *terminal.Screen
	title      *TitleBar
	status     *StatusBar
	input      *InputLine
	dispatcher *Dispatcher
	keys       keyMap
	tick       time.Duration
	logger     *slog.Logger
}

type AppConfig struct {
	Service    *application.Service
	Screen     *terminal.Screen
	Title      *TitleBar
	Status     *StatusBar
	Input      *InputLine
	Dispatcher *Dispatcher
	Tick       time.Duration
	Logger     *slog.Logger
}

func NewApp(ctx context.Context, cfg AppConfig) *App {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Tick <= 0 {
		cfg.Tick = time.Second
	}

	return &App{
		ctx:        ctx,
		svc:        cfg.Service,
		screen:     cfg.Screen,
		title:      cfg.Title,
		status:     cfg.Status,
		input:      cfg.Input,
		dispatcher: cfg.Dispatcher,
		keys:       defaultKeyMap(),
		tick:       cfg.Tick,
		logger:     cfg.Logger,
	}
}

func (m *App) Init() tea.Cmd {
	m.svc.RefreshAll()
	return tea.Batch(textinput.Blink, m.nextTick())
}

func (m *App) nextTick() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		var quit bool
		cmd, quit = m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}

	case IncomingMsg:
		if _, err := m.svc.ShowIncoming(msg.From, msg.Body); err != nil {
			m.logger.Warn("incoming message dropped", "from", msg.From, "error", err)
			m.svc.ConsoleBad(fmt.Sprintf("Message from %s dropped: %v", msg.From, err))
		}

	case tickMsg:
		cmd = m.nextTick()

	default:
		cmd = m.input.Update(msg)
	}

	m.svc.RefreshAll()
	return m, cmd
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true
	case key.Matches(msg, m.keys.Submit):
		return nil, m.dispatcher.Handle(m.ctx, m.input.Take())
	case key.Matches(msg, m.keys.ScrollUp):
		m.svc.ScrollFocused(-scrollStep)
		return nil, false
	case key.Matches(msg, m.keys.ScrollDown):
		m.svc.ScrollFocused(scrollStep)
		return nil, false
	}

	for i, binding := range m.keys.Windows {
		if key.Matches(msg, binding) {
			if err := m.svc.SwitchTo(domain.SlotIndex(i)); err != nil {
				m.svc.ConsoleBad(fmt.Sprintf("Could not switch window: %v", err))
			}
			return nil, false
		}
	}

	return m.input.Update(msg), false
}

func (m *App) resize(width, height int) {
	m.screen.Resize(width, height)
	m.title.SetWidth(width)
	m.status.SetWidth(width)
	m.input.SetWidth(width)
}

func (m *App) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.title.View(),
		m.screen.Body(),
		m.status.View(),
		m.input.View(),
	)
}
