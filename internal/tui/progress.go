// Package tui renders long-running table generation as a bubbletea
// progress screen, in the style the teacher's recording TUI uses: a model
// fed by a channel of domain events, redrawn with lipgloss styles.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/twophase-go/solver/internal/tables"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	barFilledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	doneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

type progressMsg tables.Progress
type doneMsg struct {
	tabs *tables.Tables
	err  error
}

type model struct {
	ch       chan tables.Progress
	last     tables.Progress
	result   *tables.Tables
	err      error
	finished bool
}

// RunBuild drives tables.Build (or LoadOrBuild, via build) behind a
// bubbletea progress screen and returns the built tables once the program
// exits.
func RunBuild(build func(chan<- tables.Progress) (*tables.Tables, error)) (*tables.Tables, error) {
	ch := make(chan tables.Progress, 1)
	m := &model{ch: ch}
	p := tea.NewProgram(m, tea.WithAltScreen())

	go func() {
		tabs, err := build(ch)
		p.Send(doneMsg{tabs: tabs, err: err})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	fm := finalModel.(*model)
	return fm.result, fm.err
}

func (m *model) Init() tea.Cmd {
	return m.listen()
}

func (m *model) listen() tea.Cmd {
	return func() tea.Msg {
		p, ok := <-m.ch
		if !ok {
			return nil
		}
		return progressMsg(p)
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.last = tables.Progress(msg)
		return m, m.listen()
	case doneMsg:
		m.finished = true
		m.result = msg.tabs
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("twophase: building move and pruning tables"))
	b.WriteString("\n\n")
	if m.finished {
		if m.err != nil {
			b.WriteString(errStyle.Render(fmt.Sprintf("build failed: %v", m.err)))
		} else {
			b.WriteString(doneStyle.Render("done."))
		}
		b.WriteString("\n")
		return b.String()
	}
	if m.last.Total > 0 {
		const width = 30
		filled := width * m.last.Done / m.last.Total
		if filled > width {
			filled = width
		}
		bar := barFilledStyle.Render(strings.Repeat("#", filled)) +
			barEmptyStyle.Render(strings.Repeat("-", width-filled))
		b.WriteString(fmt.Sprintf("[%s] %d/%d\n", bar, m.last.Done, m.last.Total))
		b.WriteString(stepStyle.Render(m.last.Step))
		b.WriteString("\n")
	} else {
		b.WriteString(stepStyle.Render("starting...\n"))
	}
	return b.String()
}
