package folderform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"notetaker/internal/theme"
)

// SubmittedMsg is dispatched when the user confirms the new folder.
type SubmittedMsg struct {
	Name  string
	Color string
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	name  string
	color string
}

// Model is the folder creation form: a name input and a color picker over
// the standard folder palette.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a new folder form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{color: theme.FolderPalette[0]},
		width:  width,
		height: height,
	}
}

// Start resets the form for a fresh folder.
func (m *Model) Start() tea.Cmd {
	m.fb.name = ""
	m.fb.color = theme.FolderPalette[0]
	m.form = m.buildForm()
	return m.form.Init()
}

func (m *Model) buildForm() *huh.Form {
	colorOpts := make([]huh.Option[string], len(theme.FolderPalette))
	for i, c := range theme.FolderPalette {
		label := lipgloss.NewStyle().
			Foreground(lipgloss.Color(c)).
			Render("● " + c)
		colorOpts[i] = huh.NewOption(label, c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Folder Name").
				Placeholder("e.g. Work").
				Value(&m.fb.name).
				Validate(validateName),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOpts...).
				Value(&m.fb.color),
		),
	).WithWidth(m.formWidth())
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	if m.form == nil {
		return nil
	}
	return m.form.Init()
}

// Update handles messages for the folder form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		name := strings.TrimSpace(m.fb.name)
		color := m.fb.color
		return m, func() tea.Msg {
			return SubmittedMsg{Name: name, Color: color}
		}
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the folder form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render("Create Folder") + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
	}
	return w
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("folder name is required")
	}
	return nil
}
