package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mouazan/thesisflow/internal/cli/formatter"
)

// waitDoneMsg carries the result of the background work.
type waitDoneMsg struct {
	value any
	err   error
}

// waitModel shows an animated spinner while a slow call (plan synthesis)
// runs in the background.
type waitModel struct {
	spin    spinner.Model
	message string
	run     func() (any, error)

	value any
	err   error
	done  bool
}

func newWaitModel(message string, run func() (any, error)) waitModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple
	return waitModel{spin: sp, message: message, run: run}
}

func (m waitModel) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg {
			value, err := m.run()
			return waitDoneMsg{value: value, err: err}
		},
	)
}

func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case waitDoneMsg:
		m.value, m.err = msg.value, msg.err
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.err = fmt.Errorf("interrupted")
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m waitModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("  %s %s\n", m.spin.View(), formatter.Dim(m.message))
}

// runWithSpinner runs fn behind a spinner when attached to a terminal,
// or directly otherwise.
func runWithSpinner(app *App, message string, fn func() (any, error)) (any, error) {
	if !app.interactive() {
		return fn()
	}
	final, err := tea.NewProgram(newWaitModel(message, fn)).Run()
	if err != nil {
		return nil, err
	}
	m := final.(waitModel)
	return m.value, m.err
}
