package application

import (
	"errors"
	"fmt"

	"github.com/strugee/profanity/internal/domain"
)

var ErrUnsupportedCommand = errors.New("unsupported command")

// Command is one replayable window operation.
type Command interface {
	commandName() string
}

type ShowIncomingCommand struct {
	From domain.PartnerID
	Body string
}

type ShowOutgoingCommand struct {
	From domain.PartnerID
	To   domain.PartnerID
	Body string
}

type SwitchCommand struct {
	Slot domain.SlotIndex
}

type CloseFocusedCommand struct{}

type ConsoleTone string

const (
	ConsoleTonePlain     ConsoleTone = "plain"
	ConsoleToneGood      ConsoleTone = "good"
	ConsoleToneBad       ConsoleTone = "bad"
	ConsoleToneHighlight ConsoleTone = "highlight"
)

func (t ConsoleTone) Valid() bool {
	switch t {
	case ConsoleTonePlain, ConsoleToneGood, ConsoleToneBad, ConsoleToneHighlight:
		return true
	default:
		return false
	}
}

type ConsoleCommand struct {
	Text string
	Tone ConsoleTone
}

func (ShowIncomingCommand) commandName() string { return "incoming" }
func (ShowOutgoingCommand) commandName() string { return "outgoing" }
func (SwitchCommand) commandName() string       { return "switch" }
func (CloseFocusedCommand) commandName() string { return "close" }
func (ConsoleCommand) commandName() string      { return "console" }

// Apply runs a single command against the controller.
func (s *Service) Apply(cmd Command) error {
	switch c := cmd.(type) {
	case ShowIncomingCommand:
		_, err := s.ShowIncoming(c.From, c.Body)
		return err
	case ShowOutgoingCommand:
		_, err := s.ShowOutgoing(c.From, c.To, c.Body)
		return err
	case SwitchCommand:
		return s.SwitchTo(c.Slot)
	case CloseFocusedCommand:
		return s.CloseFocused()
	case ConsoleCommand:
		return s.applyConsole(c)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedCommand, cmd)
	}
}

// ApplyAll runs commands in order and stops at the first failure.
func (s *Service) ApplyAll(cmds []Command) error {
	for i, cmd := range cmds {
		if err := s.Apply(cmd); err != nil {
			return fmt.Errorf("apply %s command %d: %w", cmd.commandName(), i+1, err)
		}
	}
	s.Refresh()
	return nil
}

func (s *Service) applyConsole(c ConsoleCommand) error {
	if s.pool == nil {
		return domain.ErrNotInitialized
	}

	switch c.Tone {
	case ConsoleTonePlain, "":
		s.ConsoleShow(c.Text)
	case ConsoleToneGood:
		s.ConsoleGood(c.Text)
	case ConsoleToneBad:
		s.ConsoleBad(c.Text)
	case ConsoleToneHighlight:
		s.ConsoleHighlight(c.Text)
	default:
		return fmt.Errorf("%w: console tone %q", ErrUnsupportedCommand, c.Tone)
	}
	return nil
}
