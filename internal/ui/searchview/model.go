package searchview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notetaker/internal/notebook"
	"notetaker/internal/theme"
)

// OpenResultMsg is sent when the user picks a search result.
type OpenResultMsg struct {
	Folder string
	Title  string
}

// CloseMsg is sent when the user leaves the search view.
type CloseMsg struct{}

// Model is the search view: a live query input over the whole registry
// with a result list underneath. The query re-runs on every keystroke;
// search is stateless so this never mutates anything.
type Model struct {
	nb      *notebook.Notebook
	input   textinput.Model
	results []notebook.SearchResult
	cursor  int
	width   int
	height  int
}

// New creates a search view over the given notebook.
func New(nb *notebook.Notebook, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "search notes..."
	ti.Prompt = "/ "
	ti.Width = width - 6

	return Model{
		nb:     nb,
		input:  ti,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Focus clears the previous query and focuses the input.
func (m *Model) Focus() tea.Cmd {
	m.input.Reset()
	m.results = nil
	m.cursor = 0
	return m.input.Focus()
}

// Update handles messages for the search view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return CloseMsg{} }

		case "enter":
			if len(m.results) > 0 && m.cursor < len(m.results) {
				r := m.results[m.cursor]
				return m, func() tea.Msg {
					return OpenResultMsg{Folder: r.Folder, Title: r.Title}
				}
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Re-run the query against the registry on every edit.
	m.results = m.nb.Search(m.input.Value())
	if m.cursor >= len(m.results) {
		m.cursor = 0
	}

	return m, cmd
}

// View renders the query input and the result list.
func (m Model) View() string {
	lines := []string{
		theme.PaneTitleStyle.Render("Search Notes"),
		"",
		m.input.View(),
		"",
	}

	if m.input.Value() == "" {
		lines = append(lines, theme.DimmedStyle.Render("type to search titles and contents"))
	} else if len(m.results) == 0 {
		lines = append(lines, theme.DimmedStyle.Render("no matches"))
	}

	for i, r := range m.results {
		line := fmt.Sprintf("%s > %s", r.Folder, r.Title)
		if i == m.cursor {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		lines = append(lines, line)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)

	return theme.PanelStyle.
		Width(m.width - 4).
		Height(m.height - 2).
		Render(content)
}

// SetSize updates the search view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}
