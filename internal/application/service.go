package application

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/strugee/profanity/internal/domain"
	"github.com/strugee/profanity/internal/ports"
)

var ErrUnsupportedEvictionPolicy = errors.New("unsupported eviction policy")

// EvictionPolicy decides what happens when a new partner arrives and every
// chat slot is bound.
type EvictionPolicy string

const (
	EvictionReject      EvictionPolicy = "reject"
	EvictionLeastRecent EvictionPolicy = "evict"
)

func (p EvictionPolicy) Valid() bool {
	switch p {
	case EvictionReject, EvictionLeastRecent:
		return true
	default:
		return false
	}
}

const welcomeMessage = "Welcome to Profanity."

// Service is the session controller: it owns the window pool, tracks the
// focused slot and routes messages into windows. It is not safe for
// concurrent use; hosts must funnel every call through one goroutine.
type Service struct {
	term   ports.Terminal
	status ports.StatusIndicator
	title  ports.TitleIndicator
	input  ports.InputLine
	clock  ports.TimeFormatter

	pool     *WindowPool
	renderer *Renderer
	focus    domain.SlotIndex
	policy   EvictionPolicy
	logger   *slog.Logger
}

type Option func(*Service)

func WithEvictionPolicy(policy EvictionPolicy) Option {
	return func(s *Service) {
		s.policy = policy
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithInputLine(input ports.InputLine) Option {
	return func(s *Service) {
		s.input = input
	}
}

func NewService(term ports.Terminal, status ports.StatusIndicator, title ports.TitleIndicator, clock ports.TimeFormatter, opts ...Option) *Service {
	s := &Service{
		term:   term,
		status: status,
		title:  title,
		clock:  clock,
		policy: EvictionReject,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Initialize brings up the terminal, allocates every window buffer and
// focuses the console.
func (s *Service) Initialize() error {
	if !s.policy.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedEvictionPolicy, s.policy)
	}

	if err := s.term.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}

	s.pool = NewWindowPool(s.term, s.status)
	s.renderer = NewRenderer(s.pool, s.clock)
	s.focus = domain.ConsoleSlot
	s.title.ShowTitle()

	s.consoleWrite(welcomeMessage, domain.StyleBold)
	s.Refresh()

	s.logger.Debug("windows initialized", "slots", domain.SlotCount, "policy", s.policy)
	return nil
}

func (s *Service) Shutdown() error {
	if err := s.term.Close(); err != nil {
		return fmt.Errorf("close terminal: %w", err)
	}
	return nil
}

// RefreshAll repaints the title and status bars and the focused window,
// then hands the cursor back to the input line.
func (s *Service) RefreshAll() {
	s.title.Refresh()
	s.status.Refresh()
	s.Refresh()
	if s.input != nil {
		s.input.PutBack()
	}
}

// Refresh repaints only the focused window.
func (s *Service) Refresh() {
	if s.pool == nil {
		return
	}
	buf, err := s.pool.buffer(s.focus)
	if err != nil {
		return
	}
	buf.Repaint()
}

func (s *Service) IsSlotBound(i domain.SlotIndex) bool {
	if s.pool == nil {
		return false
	}
	return s.pool.IsBound(i)
}

func (s *Service) SwitchTo(i domain.SlotIndex) error {
	if s.pool == nil {
		return domain.ErrNotInitialized
	}
	partner, err := s.pool.Partner(i)
	if err != nil {
		return fmt.Errorf("switch window: %w", err)
	}

	s.focus = i
	if i.IsConsole() || partner == "" {
		s.title.ShowTitle()
	} else {
		s.title.ShowName(partner)
	}

	return nil
}

// CloseFocused frees the focused chat window and returns to the console.
// With the console focused nothing changes and ErrCloseConsole is returned.
func (s *Service) CloseFocused() error {
	if s.pool == nil {
		return domain.ErrNotInitialized
	}
	if s.focus.IsConsole() {
		return domain.ErrCloseConsole
	}

	closed := s.focus
	if err := s.pool.Close(closed); err != nil {
		return fmt.Errorf("close window: %w", err)
	}
	s.status.SetInactive(closed)
	s.logger.Debug("window closed", "slot", int(closed))

	return s.SwitchTo(domain.ConsoleSlot)
}

func (s *Service) IsCurrentAChat() bool {
	return s.focus.IsChat() && s.IsSlotBound(s.focus)
}

func (s *Service) Focused() domain.SlotIndex {
	return s.focus
}

// CurrentPartnerID returns the focused window's partner. The value is
// detached from the slot, so a later rebind does not change it.
func (s *Service) CurrentPartnerID() domain.PartnerID {
	if s.pool == nil {
		return ""
	}
	partner, err := s.pool.Partner(s.focus)
	if err != nil {
		return ""
	}
	return partner
}

// ShowIncoming routes a received message by the sender's bare id.
func (s *Service) ShowIncoming(from domain.PartnerID, message string) (domain.SlotIndex, error) {
	short := from.Bare()
	return s.showMessage(short, short, message, true)
}

// ShowOutgoing routes a sent message by the full recipient id.
func (s *Service) ShowOutgoing(from, to domain.PartnerID, message string) (domain.SlotIndex, error) {
	return s.showMessage(to, from, message, false)
}

func (s *Service) showMessage(partner, sender domain.PartnerID, message string, incoming bool) (domain.SlotIndex, error) {
	if s.pool == nil {
		return 0, domain.ErrNotInitialized
	}

	i, err := s.resolve(partner)
	if err != nil {
		s.logger.Warn("message not routed", "partner", partner, "incoming", incoming, "error", err)
		return 0, err
	}

	if err := s.renderer.WriteTimestampPrefix(i); err != nil {
		return 0, err
	}
	if err := s.renderer.WriteAttributedSender(i, string(sender), incoming); err != nil {
		return 0, err
	}
	if err := s.renderer.WriteLine(i, message); err != nil {
		return 0, err
	}

	s.pool.Touch(i)
	s.status.SetActive(i)

	return i, nil
}

func (s *Service) resolve(partner domain.PartnerID) (domain.SlotIndex, error) {
	i, err := s.pool.ResolveOrCreate(partner)
	if err == nil {
		return i, nil
	}
	if !errors.Is(err, domain.ErrPoolExhausted) || s.policy != EvictionLeastRecent {
		return 0, err
	}

	victim, ok := s.pool.LeastRecentlyActive(s.focus)
	if !ok {
		return 0, err
	}
	evicted, _ := s.pool.Partner(victim)
	if closeErr := s.pool.Close(victim); closeErr != nil {
		return 0, fmt.Errorf("evict window %d: %w", int(victim), closeErr)
	}
	s.logger.Info("window evicted", "slot", int(victim), "partner", evicted, "for", partner)

	return s.pool.ResolveOrCreate(partner)
}

// ScrollFocused moves the focused window's view by delta lines; negative
// values scroll back.
func (s *Service) ScrollFocused(delta int) {
	if s.pool == nil {
		return
	}
	buf, err := s.pool.buffer(s.focus)
	if err != nil {
		return
	}
	if scroller, ok := buf.(interface{ Scroll(int) }); ok {
		scroller.Scroll(delta)
	}
}
