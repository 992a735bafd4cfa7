package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/strugee/profanity/internal/ports"
)

const inputPrompt = "> "

// InputLine is the single-line prompt on the bottom row.
type InputLine struct {
	model textinput.Model
}

var _ ports.InputLine = (*InputLine)(nil)

func NewInputLine() *InputLine {
	ti := textinput.New()
	ti.Prompt = inputPrompt
	ti.Focus()
	return &InputLine{model: ti}
}

// PutBack returns the cursor to the input line after a repaint.
func (in *InputLine) PutBack() {
	if !in.model.Focused() {
		in.model.Focus()
	}
}

func (in *InputLine) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	in.model, cmd = in.model.Update(msg)
	return cmd
}

// Take returns the typed line and clears the prompt.
func (in *InputLine) Take() string {
	text := in.model.Value()
	in.model.Reset()
	return text
}

func (in *InputLine) SetWidth(width int) {
	in.model.Width = max(width-len(inputPrompt)-1, 1)
}

func (in *InputLine) View() string {
	return in.model.View()
}
