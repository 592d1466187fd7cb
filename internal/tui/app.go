// Package tui is the interactive shell: a command prompt over a
// transcript of everything the task list answered.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdxmph/tasks-tui/internal/command"
)

// entry is one prompt/response pair in the transcript.
type entry struct {
	input    string
	response string
	isErr    bool
}

// Model represents the main application state
type Model struct {
	dispatcher *command.Dispatcher
	input      textinput.Model
	transcript []entry
	width      int
	height     int
	quitting   bool
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

// New creates a new application model
func New(dispatcher *command.Dispatcher) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a command..."
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()

	return Model{
		dispatcher: dispatcher,
		input:      ti,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width > 4 {
			m.input.Width = m.width - 4
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			line := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(line) == "" {
				return m, nil
			}

			result, err := m.dispatcher.Handle(line)
			if err != nil {
				m.transcript = append(m.transcript, entry{
					input:    line,
					response: err.Error(),
					isErr:    true,
				})
				return m, nil
			}

			m.transcript = append(m.transcript, entry{
				input:    line,
				response: result.Response,
			})
			if result.Quit {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var lines []string
	lines = append(lines, titleStyle.Render("tasks"))
	lines = append(lines, "")

	for _, e := range m.renderableTranscript() {
		lines = append(lines, promptStyle.Render("> ")+e.input)
		response := e.response
		if e.isErr {
			response = errorStyle.Render(response)
		}
		lines = append(lines, response)
		lines = append(lines, "")
	}

	lines = append(lines, m.input.View())
	lines = append(lines, "")
	lines = append(lines, helpStyle.Render(
		"todo/deadline/event: add • list • mark/unmark/delete <n> • setPriority <n> <h/m/l> • find • findPriority • on yyyy/MM/dd • bye"))

	return strings.Join(lines, "\n")
}

// renderableTranscript trims the transcript to what fits above the
// prompt so the newest exchanges stay visible.
func (m Model) renderableTranscript() []entry {
	if m.height == 0 {
		return m.transcript
	}

	budget := m.height - 5 // title, spacer, prompt, spacer, help
	total := 0
	start := len(m.transcript)
	for i := len(m.transcript) - 1; i >= 0; i-- {
		cost := 2 + strings.Count(m.transcript[i].response, "\n") + 1
		if total+cost > budget {
			break
		}
		total += cost
		start = i
	}
	return m.transcript[start:]
}
