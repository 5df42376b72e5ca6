package app

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"notetaker/internal/notebook"
)

// executeCommand runs a command palette entry. Commands operate on the
// current session selection.
func (m Model) executeCommand(input string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return m, nil
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch name {
	case "export":
		return m.commandExport(args)

	case "import":
		return m.commandImport(args)

	case "delete":
		return m.commandDelete()

	case "font":
		m.previousView = m.currentView
		m.currentView = ViewFontForm
		return m, m.fontForm.Start(m.nb.CurrentFont())

	case "search":
		m.previousView = m.currentView
		m.currentView = ViewSearch
		return m, m.searchView.Focus()

	case "about":
		m.status = "Note Taker: folders, notes, and fonts in your terminal"
		return m, nil

	case "quit", "q":
		return m, m.quit()

	default:
		m.status = fmt.Sprintf("Unknown command %q", name)
		return m, nil
	}
}

// commandExport writes the current note to a text file. With no path
// argument the note title becomes the file name.
func (m Model) commandExport(args []string) (tea.Model, tea.Cmd) {
	n, err := m.nb.CurrentNote()
	if err != nil {
		m.warn(err)
		return m, nil
	}

	path := n.Title
	if len(args) > 0 {
		path = strings.Join(args, " ")
	}

	if err := m.nb.ExportNote(m.nb.Session().Folder(), n.Title, path); err != nil {
		m.warn(err)
		return m, nil
	}

	m.status = fmt.Sprintf("Exported %q", n.Title)
	return m, nil
}

// commandImport reads a text file into the current folder as a new note.
func (m Model) commandImport(args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		m.status = "Usage: import <path>"
		return m, nil
	}

	f, err := m.nb.CurrentFolder()
	if err != nil {
		m.warn(err)
		return m, nil
	}

	path := strings.Join(args, " ")
	n, err := m.nb.ImportNoteFile(f.Name, path)
	if err != nil {
		m.warn(err)
		return m, nil
	}

	m.browserView.ClampCursors()
	m.browserView.FocusNote(n.Title)
	m.status = fmt.Sprintf("Imported %q into %q", n.Title, f.Name)
	return m, nil
}

// commandDelete removes the currently selected note.
func (m Model) commandDelete() (tea.Model, tea.Cmd) {
	n, err := m.nb.CurrentNote()
	if err != nil {
		m.warn(err)
		return m, nil
	}

	folder := m.nb.Session().Folder()
	if err := m.nb.DeleteNote(folder, n.Title); err != nil {
		m.warn(err)
		return m, nil
	}

	m.browserView.ClampCursors()
	m.currentView = ViewBrowser
	m.status = fmt.Sprintf("Deleted note %q", n.Title)
	return m, nil
}

// friendlyError maps data-layer errors to status bar text.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, notebook.ErrEmptyName):
		return "A name is required"
	case errors.Is(err, notebook.ErrDuplicateName):
		return "A folder with that name already exists"
	case errors.Is(err, notebook.ErrDuplicateTitle):
		return "A note with that title already exists"
	case errors.Is(err, notebook.ErrNotFound):
		return "Not found"
	case errors.Is(err, notebook.ErrNoSelection):
		return "Select a folder first"
	default:
		return err.Error()
	}
}
