package fontform

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"notetaker/internal/model"
	"notetaker/internal/theme"
)

// SubmittedMsg is dispatched when the user applies new font settings.
type SubmittedMsg struct {
	Font model.FontDescriptor
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// FontFamilies returns the static family list offered by the font form.
// The enumeration belongs to the presentation layer: the core stores
// whatever family string it is given.
func FontFamilies() []string {
	return []string{
		"Arial",
		"Helvetica",
		"Times New Roman",
		"Courier New",
		"Verdana",
		"Georgia",
		"Consolas",
		"Menlo",
	}
}

// FontSizes returns the static point size list offered by the font form.
func FontSizes() []int {
	return []int{8, 9, 10, 11, 12, 14, 16, 18, 20, 24, 28, 32}
}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	family string
	size   int
	weight string
	slant  string
}

// Model is the font settings form: family, size, weight, and slant.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a new font form model.
func New(width, height int) Model {
	def := model.DefaultFont()
	return Model{
		fb: &formBindings{
			family: def.Family,
			size:   def.Size,
			weight: def.Weight,
			slant:  def.Slant,
		},
		width:  width,
		height: height,
	}
}

// Start initializes the form with the given current descriptor.
func (m *Model) Start(current model.FontDescriptor) tea.Cmd {
	current = current.Normalize()
	m.fb.family = current.Family
	m.fb.size = current.Size
	m.fb.weight = current.Weight
	m.fb.slant = current.Slant
	m.form = m.buildForm()
	return m.form.Init()
}

func (m *Model) buildForm() *huh.Form {
	familyOpts := make([]huh.Option[string], 0, len(FontFamilies()))
	for _, f := range FontFamilies() {
		familyOpts = append(familyOpts, huh.NewOption(f, f))
	}

	sizeOpts := make([]huh.Option[int], 0, len(FontSizes()))
	for _, s := range FontSizes() {
		sizeOpts = append(sizeOpts, huh.NewOption(formatSize(s), s))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Font Family").
				Options(familyOpts...).
				Value(&m.fb.family),
			huh.NewSelect[int]().
				Title("Font Size").
				Options(sizeOpts...).
				Value(&m.fb.size),
			huh.NewSelect[string]().
				Title("Weight").
				Options(
					huh.NewOption("Normal", model.WeightNormal),
					huh.NewOption("Bold", model.WeightBold),
				).
				Value(&m.fb.weight),
			huh.NewSelect[string]().
				Title("Slant").
				Options(
					huh.NewOption("Roman", model.SlantRoman),
					huh.NewOption("Italic", model.SlantItalic),
				).
				Value(&m.fb.slant),
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

// Update handles messages for the font form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		fd := model.FontDescriptor{
			Family: m.fb.family,
			Size:   m.fb.size,
			Weight: m.fb.weight,
			Slant:  m.fb.slant,
		}
		return m, func() tea.Msg { return SubmittedMsg{Font: fd} }
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the font form with a preview line styled as far as a
// terminal can approximate the descriptor.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	preview := lipgloss.NewStyle().
		Bold(m.fb.weight == model.WeightBold).
		Italic(m.fb.slant == model.SlantItalic).
		Foreground(theme.ColorWhite).
		Render("This is how your text will look.")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Font Settings"),
		m.form.View(),
		"",
		theme.DimmedStyle.Render("Preview:"),
		preview,
	)

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

func formatSize(s int) string {
	return fmt.Sprintf("%d pt", s)
}
