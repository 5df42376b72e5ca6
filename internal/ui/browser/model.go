package browser

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notetaker/internal/keys"
	"notetaker/internal/model"
	"notetaker/internal/notebook"
	"notetaker/internal/theme"
)

// FolderSelectedMsg is sent when the user moves the folder selection.
type FolderSelectedMsg struct {
	Name string
}

// NoteSelectedMsg is sent when the user opens a note for editing.
type NoteSelectedMsg struct {
	Folder string
	Title  string
}

// NewFolderMsg requests the folder creation form.
type NewFolderMsg struct{}

// NewNoteMsg requests a new note in the current folder.
type NewNoteMsg struct{}

// DeleteFolderMsg requests deletion of a folder and its notes.
type DeleteFolderMsg struct {
	Name string
}

// DeleteNoteMsg requests deletion of a single note.
type DeleteNoteMsg struct {
	Folder string
	Title  string
}

// pane identifies which side of the browser has keyboard focus.
type pane int

const (
	paneFolders pane = iota
	paneNotes
)

// Model is the two-pane browser view: the folder sidebar on the left and
// the notes of the current folder on the right.
type Model struct {
	nb     *notebook.Notebook
	keys   *keys.KeyMap
	focus  pane
	folder int // cursor into nb.Folders()
	note   int // cursor into the current folder's notes
	width  int
	height int
}

// New creates a browser over the given notebook.
func New(nb *notebook.Notebook, k *keys.KeyMap, width, height int) Model {
	m := Model{
		nb:     nb,
		keys:   k,
		width:  width,
		height: height,
	}

	// Align the cursor with the session's auto-selected folder.
	if sel := nb.Session().Folder(); sel != "" {
		for i, f := range nb.Folders() {
			if f.Name == sel {
				m.folder = i
				break
			}
		}
	}

	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.NextPane):
		if m.focus == paneFolders {
			m.focus = paneNotes
		} else {
			m.focus = paneFolders
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		return m.moveCursor(1)

	case key.Matches(keyMsg, m.keys.Up):
		return m.moveCursor(-1)

	case key.Matches(keyMsg, m.keys.Select):
		if m.focus == paneNotes {
			if n := m.selectedNote(); n != nil {
				folder := m.selectedFolderName()
				title := n.Title
				return m, func() tea.Msg {
					return NoteSelectedMsg{Folder: folder, Title: title}
				}
			}
		} else {
			m.focus = paneNotes
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.NewFolder):
		return m, func() tea.Msg { return NewFolderMsg{} }

	case key.Matches(keyMsg, m.keys.NewNote):
		return m, func() tea.Msg { return NewNoteMsg{} }

	case key.Matches(keyMsg, m.keys.Delete):
		return m.requestDelete()
	}

	return m, nil
}

// moveCursor shifts the selection in the focused pane, clamping to the
// available items, and reports folder changes upward.
func (m Model) moveCursor(delta int) (Model, tea.Cmd) {
	if m.focus == paneFolders {
		folders := m.nb.Folders()
		if len(folders) == 0 {
			return m, nil
		}
		m.folder = clamp(m.folder+delta, 0, len(folders)-1)
		m.note = 0
		name := folders[m.folder].Name
		return m, func() tea.Msg {
			return FolderSelectedMsg{Name: name}
		}
	}

	notes := m.currentNotes()
	if len(notes) == 0 {
		return m, nil
	}
	m.note = clamp(m.note+delta, 0, len(notes)-1)
	return m, nil
}

// requestDelete emits a deletion request for the focused item.
func (m Model) requestDelete() (Model, tea.Cmd) {
	if m.focus == paneFolders {
		f := m.selectedFolder()
		if f == nil {
			return m, nil
		}
		name := f.Name
		return m, func() tea.Msg { return DeleteFolderMsg{Name: name} }
	}

	n := m.selectedNote()
	if n == nil {
		return m, nil
	}
	folder := m.selectedFolderName()
	title := n.Title
	return m, func() tea.Msg { return DeleteNoteMsg{Folder: folder, Title: title} }
}

// ClampCursors re-validates both cursors after external mutations
// (creation, deletion, import) changed the underlying collections.
func (m *Model) ClampCursors() {
	folders := m.nb.Folders()
	if len(folders) == 0 {
		m.folder = 0
		m.note = 0
		m.focus = paneFolders
		return
	}
	m.folder = clamp(m.folder, 0, len(folders)-1)

	notes := folders[m.folder].Notes.All()
	if len(notes) == 0 {
		m.note = 0
		return
	}
	m.note = clamp(m.note, 0, len(notes)-1)
}

// FocusNote moves the cursor (and focus) to the titled note in the current
// folder, if present.
func (m *Model) FocusNote(title string) {
	for i, n := range m.currentNotes() {
		if n.Title == title {
			m.note = i
			m.focus = paneNotes
			return
		}
	}
}

// FocusFolder moves the folder cursor to the named folder, if present.
func (m *Model) FocusFolder(name string) {
	for i, f := range m.nb.Folders() {
		if f.Name == name {
			m.folder = i
			m.note = 0
			m.focus = paneFolders
			return
		}
	}
}

// SelectedFolderName returns the name under the folder cursor, or "".
func (m Model) SelectedFolderName() string {
	return m.selectedFolderName()
}

func (m Model) selectedFolder() *model.Folder {
	folders := m.nb.Folders()
	if len(folders) == 0 || m.folder >= len(folders) {
		return nil
	}
	return folders[m.folder]
}

func (m Model) selectedFolderName() string {
	if f := m.selectedFolder(); f != nil {
		return f.Name
	}
	return ""
}

func (m Model) currentNotes() []*model.Note {
	f := m.selectedFolder()
	if f == nil {
		return nil
	}
	return f.Notes.All()
}

func (m Model) selectedNote() *model.Note {
	notes := m.currentNotes()
	if len(notes) == 0 || m.note >= len(notes) {
		return nil
	}
	return notes[m.note]
}

// View renders the two panes side by side.
func (m Model) View() string {
	folders := m.nb.Folders()
	if len(folders) == 0 {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("No folders yet.\n\nPress N to create one.")
	}

	sidebarWidth := m.width / 4
	if sidebarWidth < 20 {
		sidebarWidth = 20
	}
	notesWidth := m.width - sidebarWidth - 6

	sidebar := m.renderFolderPane(sidebarWidth)
	notes := m.renderNotePane(notesWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, notes)
}

// renderFolderPane draws the folder sidebar.
func (m Model) renderFolderPane(width int) string {
	lines := []string{theme.PaneTitleStyle.Render("Folders")}

	for i, f := range m.nb.Folders() {
		line := fmt.Sprintf("%s %s", theme.FolderDot(f.Color), f.Name)
		if i == m.folder {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		lines = append(lines, line)
	}

	style := theme.PanelStyle
	if m.focus == paneFolders {
		style = theme.FocusedPanelStyle
	}

	return style.
		Width(width).
		Height(m.height - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderNotePane draws the note list of the selected folder.
func (m Model) renderNotePane(width int) string {
	lines := []string{theme.PaneTitleStyle.Render("Notes")}

	notes := m.currentNotes()
	if len(notes) == 0 {
		lines = append(lines, theme.DimmedStyle.Render("  no notes yet, press n"))
	}

	for i, n := range notes {
		stamp := theme.DimmedStyle.Render("  " + relativeTime(n.Modified))
		line := n.Title + stamp
		if i == m.note {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		lines = append(lines, line)
	}

	style := theme.PanelStyle
	if m.focus == paneNotes {
		style = theme.FocusedPanelStyle
	}

	return style.
		Width(width).
		Height(m.height - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// SetSize updates the browser dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
