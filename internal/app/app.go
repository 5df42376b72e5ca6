package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"notetaker/internal/keys"
	"notetaker/internal/notebook"
	"notetaker/internal/ui"
	"notetaker/internal/ui/browser"
	"notetaker/internal/ui/command"
	"notetaker/internal/ui/editor"
	"notetaker/internal/ui/folderform"
	"notetaker/internal/ui/fontform"
	"notetaker/internal/ui/helpview"
	"notetaker/internal/ui/searchview"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewEditor
	ViewSearch
	ViewFolderForm
	ViewFontForm
	ViewHelp
	ViewCommand
)

// Model is the root Bubble Tea model that manages view routing, layout,
// and access to the notebook.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	nb           *notebook.Notebook
	keys         *keys.KeyMap

	browserView browser.Model
	editorView  editor.Model
	searchView  searchview.Model
	folderForm  folderform.Model
	fontForm    fontform.Model
	helpView    helpview.Model
	commandView command.Model

	ready  bool
	status string // transient warning line for the status bar
}

// New creates the root application model over an opened notebook.
func New(nb *notebook.Notebook) Model {
	k := keys.DefaultKeyMap()

	return Model{
		currentView: ViewBrowser,
		nb:          nb,
		keys:        k,
		browserView: browser.New(nb, k, 80, 24),
		editorView:  editor.New(80, 24),
		searchView:  searchview.New(nb, 80, 24),
		folderForm:  folderform.New(80, 24),
		fontForm:    fontform.New(80, 24),
		helpView:    helpview.New(k, 80, 24),
		commandView: command.New(80, 24),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return m.browserView.Init()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		m.nb.SetWindowSize(msg.Width, msg.Height)
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.browserView.SetSize(contentWidth, contentHeight)
		m.editorView.SetSize(contentWidth, contentHeight)
		m.searchView.SetSize(contentWidth, contentHeight)
		m.folderForm.SetSize(contentWidth, contentHeight)
		m.fontForm.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		m.commandView.SetSize(contentWidth, contentHeight)
		// Forward to the active view so huh forms can lay themselves out.
		return m.updateActiveView(msg)

	case browser.FolderSelectedMsg:
		m.status = ""
		if err := m.nb.SelectFolder(msg.Name); err != nil {
			m.warn(err)
		}
		return m, nil

	case browser.NoteSelectedMsg:
		return m.openNote(msg.Folder, msg.Title)

	case browser.NewFolderMsg:
		m.previousView = m.currentView
		m.currentView = ViewFolderForm
		return m, m.folderForm.Start()

	case browser.NewNoteMsg:
		return m.createNote()

	case browser.DeleteFolderMsg:
		if err := m.nb.DeleteFolder(msg.Name); err != nil {
			m.warn(err)
		} else {
			m.status = fmt.Sprintf("Deleted folder %q", msg.Name)
		}
		m.browserView.ClampCursors()
		return m, nil

	case browser.DeleteNoteMsg:
		if err := m.nb.DeleteNote(msg.Folder, msg.Title); err != nil {
			m.warn(err)
		} else {
			m.status = fmt.Sprintf("Deleted note %q", msg.Title)
		}
		m.browserView.ClampCursors()
		return m, nil

	case editor.SaveMsg:
		return m.saveNote(msg)

	case searchview.OpenResultMsg:
		m.browserView.FocusFolder(msg.Folder)
		if err := m.nb.SelectFolder(msg.Folder); err != nil {
			m.warn(err)
			m.currentView = ViewBrowser
			return m, nil
		}
		m.browserView.FocusNote(msg.Title)
		return m.openNote(msg.Folder, msg.Title)

	case searchview.CloseMsg:
		m.currentView = ViewBrowser
		return m, nil

	case folderform.SubmittedMsg:
		m.currentView = ViewBrowser
		f, err := m.nb.CreateFolder(msg.Name, msg.Color)
		if err != nil {
			m.warn(err)
			return m, nil
		}
		m.browserView.FocusFolder(f.Name)
		if err := m.nb.SelectFolder(f.Name); err != nil {
			m.warn(err)
		}
		m.status = fmt.Sprintf("Created folder %q", f.Name)
		return m, nil

	case folderform.CancelMsg:
		m.currentView = ViewBrowser
		return m, nil

	case fontform.SubmittedMsg:
		m.nb.SetCurrentFont(msg.Font)
		m.editorView.SetFont(m.nb.CurrentFont())
		m.currentView = m.previousView
		return m, nil

	case fontform.CancelMsg:
		m.currentView = m.previousView
		return m, nil

	case command.CommandMsg:
		m.currentView = m.previousView
		return m.executeCommand(string(msg))

	case command.CancelMsg:
		m.currentView = m.previousView
		return m, nil

	case tea.KeyMsg:
		if mdl, cmd, handled := m.handleGlobalKey(msg); handled {
			return mdl, cmd
		}
	}

	// Delegate to active sub-view.
	return m.updateActiveView(msg)
}

// handleGlobalKey processes keys that work regardless of the focused
// view. Views with text inputs only see ctrl+c here.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return m, m.quit(), true
	}

	// Everything below would shadow typing in input-heavy views.
	if m.currentView != ViewBrowser && m.currentView != ViewHelp {
		return m, nil, false
	}

	switch msg.String() {
	case "q":
		if m.currentView == ViewBrowser {
			return m, m.quit(), true
		}

	case "?":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return m, nil, true
		}
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return m, nil, true

	case ":":
		m.previousView = m.currentView
		m.currentView = ViewCommand
		return m, m.commandView.Focus(), true

	case "/":
		if m.currentView == ViewBrowser {
			m.previousView = m.currentView
			m.currentView = ViewSearch
			return m, m.searchView.Focus(), true
		}

	case "f":
		if m.currentView == ViewBrowser {
			m.previousView = m.currentView
			m.currentView = ViewFontForm
			return m, m.fontForm.Start(m.nb.CurrentFont()), true
		}

	case "esc":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return m, nil, true
		}
	}

	return m, nil, false
}

// openNote selects a note and loads it into the editor.
func (m Model) openNote(folder, title string) (tea.Model, tea.Cmd) {
	if err := m.nb.SelectNote(title); err != nil {
		m.warn(err)
		return m, nil
	}

	n := m.nb.Note(folder, title)
	if n == nil {
		m.warn(notebook.ErrNotFound)
		return m, nil
	}

	m.status = ""
	m.previousView = m.currentView
	m.currentView = ViewEditor
	return m, m.editorView.Load(folder, n)
}

// createNote adds an auto-titled note to the current folder and opens it.
func (m Model) createNote() (tea.Model, tea.Cmd) {
	f, err := m.nb.CurrentFolder()
	if err != nil {
		m.warn(err)
		return m, nil
	}

	n, err := m.nb.CreateNote(f.Name)
	if err != nil {
		m.warn(err)
		return m, nil
	}

	m.browserView.ClampCursors()
	m.browserView.FocusNote(n.Title)
	return m.openNote(f.Name, n.Title)
}

// saveNote applies the editor buffer: rename first if the title changed,
// then the content update. A rejected rename keeps the old title but
// still saves the content.
func (m Model) saveNote(msg editor.SaveMsg) (tea.Model, tea.Cmd) {
	title := msg.OldTitle

	if msg.Title != msg.OldTitle {
		if err := m.nb.RenameNote(msg.Folder, msg.OldTitle, msg.Title); err != nil {
			m.warn(err)
		} else {
			title = m.nb.Session().Note()
		}
	}

	content := msg.Content
	if err := m.nb.UpdateNote(msg.Folder, title, notebook.NoteUpdate{Content: &content}); err != nil {
		m.warn(err)
	}

	m.browserView.ClampCursors()
	m.browserView.FocusNote(title)
	m.currentView = ViewBrowser
	return m, nil
}

// quit flushes preferences and stops the program.
func (m Model) quit() tea.Cmd {
	m.nb.FlushConfig()
	return tea.Quit
}

// warn turns a data-layer error into a status bar warning.
func (m *Model) warn(err error) {
	if err == nil {
		return
	}
	m.status = friendlyError(err)
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewBrowser:
		m.browserView, cmd = m.browserView.Update(msg)
	case ViewEditor:
		m.editorView, cmd = m.editorView.Update(msg)
	case ViewSearch:
		m.searchView, cmd = m.searchView.Update(msg)
	case ViewFolderForm:
		m.folderForm, cmd = m.folderForm.Update(msg)
	case ViewFontForm:
		m.fontForm, cmd = m.fontForm.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Note Taker", m.headerState())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints(), m.status)

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewBrowser:
		return m.browserView.View()
	case ViewEditor:
		return m.editorView.View()
	case ViewSearch:
		return m.searchView.View()
	case ViewFolderForm:
		return m.folderForm.View()
	case ViewFontForm:
		return m.fontForm.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	default:
		return ""
	}
}

// headerState returns the breadcrumb shown on the right of the header.
func (m Model) headerState() string {
	if m.nb.LastSaveError() != nil {
		return "⚠ save failed"
	}

	sess := m.nb.Session()
	switch {
	case sess.HasNote():
		return fmt.Sprintf("%s > %s", sess.Folder(), sess.Note())
	case sess.HasFolder():
		return sess.Folder()
	default:
		return fmt.Sprintf("%d folders", m.nb.Registry().Len())
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewEditor:
		return "esc save & close | tab title/content"
	case ViewSearch:
		return "enter open | ↑/↓ move | esc back"
	case ViewFolderForm, ViewFontForm:
		return "enter next | esc cancel"
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter execute | esc back"
	default:
		return "q quit | ? help | N folder | n note | enter open | d delete | / search | f font | : commands"
	}
}
