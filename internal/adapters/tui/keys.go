package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/strugee/profanity/internal/domain"
)

type keyMap struct {
	Quit       key.Binding
	Submit     key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Windows    [domain.SlotCount]key.Binding
}

func defaultKeyMap() keyMap {
	km := keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		ScrollUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll back")),
		ScrollDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll forward")),
	}
	for i := range km.Windows {
		fkey := fmt.Sprintf("f%d", i+1)
		km.Windows[i] = key.NewBinding(key.WithKeys(fkey), key.WithHelp(fkey, fmt.Sprintf("window %d", i+1)))
	}
	return km
}
