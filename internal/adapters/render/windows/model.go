package windows

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/strugee/profanity/internal/application"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	windows []application.WindowSnapshot
	opts    RenderOptions
	styles  styles
	output  string
}

func newModel(windows []application.WindowSnapshot, opts RenderOptions) model {
	return model{
		windows: windows,
		opts:    opts,
		styles:  newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.windows, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out window snapshots once, without a terminal attached.
func Render(windows []application.WindowSnapshot, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(windows, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
