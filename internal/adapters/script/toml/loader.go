package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/strugee/profanity/internal/application"
	"github.com/strugee/profanity/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	kindIncoming = "incoming"
	kindOutgoing = "outgoing"
	kindSwitch   = "switch"
	kindClose    = "close"
	kindConsole  = "console"
)

var ErrInvalidEvent = errors.New("invalid script event")

// Script is a decoded replay: the local user and the commands to apply.
type Script struct {
	Version  int
	User     domain.PartnerID
	Commands []application.Command
}

func Load(ctx context.Context, path string) (Script, error) {
	if err := ctx.Err(); err != nil {
		return Script{}, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return Script{}, fmt.Errorf("resolve script path: %w", err)
	}

	data, err := os.ReadFile(filepath.Clean(absPath))
	if err != nil {
		return Script{}, fmt.Errorf("read script file: %w", err)
	}

	return Decode(data)
}

func Decode(data []byte) (Script, error) {
	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return Script{}, fmt.Errorf("decode script file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return Script{}, err
	}
	file.applyDefaults()

	script := Script{
		Version:  file.Version,
		User:     domain.PartnerID(file.User),
		Commands: make([]application.Command, 0, len(file.Events)),
	}
	for i, event := range file.Events {
		cmd, err := toCommand(event, script.User)
		if err != nil {
			return Script{}, fmt.Errorf("event %d: %w", i+1, err)
		}
		script.Commands = append(script.Commands, cmd)
	}

	return script, nil
}

func toCommand(event eventSchema, user domain.PartnerID) (application.Command, error) {
	switch event.Kind {
	case kindIncoming:
		if event.From == "" {
			return nil, fmt.Errorf("%w: incoming needs from", ErrInvalidEvent)
		}
		return application.ShowIncomingCommand{From: domain.PartnerID(event.From), Body: event.Body}, nil

	case kindOutgoing:
		if event.To == "" {
			return nil, fmt.Errorf("%w: outgoing needs to", ErrInvalidEvent)
		}
		from := domain.PartnerID(event.From)
		if from == "" {
			from = user
		}
		return application.ShowOutgoingCommand{From: from, To: domain.PartnerID(event.To), Body: event.Body}, nil

	case kindSwitch:
		if event.Window < 1 || event.Window > domain.SlotCount {
			return nil, fmt.Errorf("%w: switch window %d out of range 1-%d", ErrInvalidEvent, event.Window, domain.SlotCount)
		}
		return application.SwitchCommand{Slot: domain.SlotIndex(event.Window - 1)}, nil

	case kindClose:
		return application.CloseFocusedCommand{}, nil

	case kindConsole:
		tone := application.ConsoleTone(event.Tone)
		if tone == "" {
			tone = application.ConsoleTonePlain
		}
		if !tone.Valid() {
			return nil, fmt.Errorf("%w: console tone %q", ErrInvalidEvent, event.Tone)
		}
		return application.ConsoleCommand{Text: event.Body, Tone: tone}, nil

	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidEvent, event.Kind)
	}
}
