// Package ui is the interactive lookup widget: one text field, a submit key,
// and a result area driven by a search.Controller.
package ui

import (
	"context"
	"strings"

	"pokesearch/internal/search"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const Placeholder = "e.g. Pikachu, Charmander"

type Renderer interface {
	RenderHeading() string
	RenderState(state search.State) string
}

// lookupDoneMsg carries a finished lookup back into the update loop.
type lookupDoneMsg search.Completion

// Model owns the controller. Only Update touches it, so all state changes
// happen on the bubbletea event loop; lookups run in commands.
type Model struct {
	ctx      context.Context
	ctrl     *search.Controller
	input    textinput.Model
	render   Renderer
	quitting bool
}

func NewModel(ctrl *search.Controller, r Renderer) Model {
	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = "› "
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	return Model{
		ctx:    context.Background(),
		ctrl:   ctrl,
		input:  ti,
		render: r,
	}
}

func (m Model) WithContext(ctx context.Context) Model {
	m.ctx = ctx
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		//nolint:exhaustive // only quit and submit keys are handled here
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		}

	case lookupDoneMsg:
		m.ctrl.Complete(search.Completion(msg))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() tea.Cmd {
	l := m.ctrl.Submit(m.input.Value())
	if l == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return lookupDoneMsg(l.Run(ctx))
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.render.RenderHeading())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.render.RenderState(m.ctrl.State()))
	b.WriteString("\n")
	b.WriteString("enter search • esc quit\n")
	return b.String()
}

func (m Model) State() search.State {
	return m.ctrl.State()
}

func (m Model) Value() string {
	return m.input.Value()
}
