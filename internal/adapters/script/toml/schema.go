package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	User    string        `toml:"user"`
	Events  []eventSchema `toml:"events"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported script schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// eventSchema is one [[events]] table. Window numbers are 1-based, the way
// they appear on the status bar and function keys.
type eventSchema struct {
	Kind   string `toml:"kind"`
	From   string `toml:"from,omitempty"`
	To     string `toml:"to,omitempty"`
	Body   string `toml:"body,omitempty"`
	Window int    `toml:"window,omitempty"`
	Tone   string `toml:"tone,omitempty"`
}
