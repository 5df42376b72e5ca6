package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notetaker/internal/model"
	"notetaker/internal/theme"
)

// SaveMsg carries the edited note back to the application. OldTitle and
// Title differ when the user renamed the note in the title field.
type SaveMsg struct {
	Folder   string
	OldTitle string
	Title    string
	Content  string
}

// focusField identifies which input of the editor has keyboard focus.
type focusField int

const (
	focusTitle focusField = iota
	focusContent
)

// Model is the note editor view: a title input above a content textarea.
// Esc saves the note and returns to the browser; all persistence happens
// in the application layer on receipt of SaveMsg.
type Model struct {
	title   textinput.Model
	content textarea.Model
	focus   focusField

	folder   string
	original string // title at load time, for rename detection
	font     model.FontDescriptor

	width  int
	height int
}

// New creates an empty editor model.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "note title"
	ti.Prompt = "Title: "
	ti.Width = width - 12

	ta := textarea.New()
	ta.Placeholder = "start typing..."
	ta.ShowLineNumbers = false
	ta.SetWidth(width - 4)
	ta.SetHeight(height - 6)

	return Model{
		title:   ti,
		content: ta,
		focus:   focusContent,
		width:   width,
		height:  height,
	}
}

// Load fills the editor with a note's current state and focuses the
// content area.
func (m *Model) Load(folder string, n *model.Note) tea.Cmd {
	m.folder = folder
	m.original = n.Title
	m.font = n.Font
	m.title.SetValue(n.Title)
	m.content.SetValue(n.Content)
	m.title.Blur()
	m.focus = focusContent
	return m.content.Focus()
}

// SetFont updates the font line shown under the title; the note itself is
// changed by the application layer.
func (m *Model) SetFont(f model.FontDescriptor) {
	m.font = f
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the editor.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, m.save()

		case "tab":
			// Toggle between the title field and the content area.
			if m.focus == focusTitle {
				m.focus = focusContent
				m.title.Blur()
				return m, m.content.Focus()
			}
			m.focus = focusTitle
			m.content.Blur()
			return m, m.title.Focus()
		}
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

// save emits the SaveMsg for the current buffer contents.
func (m Model) save() tea.Cmd {
	msg := SaveMsg{
		Folder:   m.folder,
		OldTitle: m.original,
		Title:    m.title.Value(),
		Content:  m.content.Value(),
	}
	return func() tea.Msg { return msg }
}

// View renders the editor.
func (m Model) View() string {
	fontLine := theme.DimmedStyle.Render(fmt.Sprintf(
		"%s %d %s %s",
		m.font.Family, m.font.Size, m.font.Weight, m.font.Slant,
	))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.title.View(),
		fontLine,
		"",
		m.content.View(),
	)
}

// SetSize updates the editor dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.title.Width = width - 12
	m.content.SetWidth(width - 4)
	m.content.SetHeight(height - 6)
}
