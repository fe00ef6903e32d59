package views

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/adapters/tui/styles"
	"noted/internal/application"
	"noted/internal/domain"
)

// recentCount is how many recently created notes the home view lists
const recentCount = 5

// HomeKeyMap defines key bindings for the home view
type HomeKeyMap struct {
	Username key.Binding
	Back     key.Binding
}

var HomeKeys = HomeKeyMap{
	Username: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "change name"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// HomeModel greets the user and lists recent notes
type HomeModel struct {
	ViewState
	store *application.Store
	edit  application.Edit
	input textinput.Model
}

// NewHomeModel creates the home view
func NewHomeModel(store *application.Store) *HomeModel {
	input := textinput.New()
	input.CharLimit = 60
	input.Prompt = ""

	return &HomeModel{store: store, input: input}
}

// Init initializes the home view
func (m *HomeModel) Init() tea.Cmd {
	return nil
}

// Editing reports whether the username is being edited
func (m *HomeModel) Editing() bool {
	return m.edit.State() == application.Editing
}

// Update handles messages for the home view
func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if !m.Editing() {
		switch {
		case key.Matches(keyMsg, HomeKeys.Username):
			m.edit.Begin(m.store.Username())
			m.input.SetValue(m.edit.Value())
			m.input.CursorEnd()
			return m, m.input.Focus()
		case key.Matches(keyMsg, HomeKeys.Back):
			return m, func() tea.Msg { return FocusSidebarMsg{} }
		}
		return m, nil
	}

	m.edit.Set(m.input.Value())
	switch application.EditKeyAction(keyMsg.String()) {
	case application.EditSave:
		m.input.Blur()
		name, ok := m.edit.Save()
		if !ok {
			return m, nil
		}
		if _, err := m.store.SetUsername(name); err != nil {
			return m, failed(err)
		}
		return m, status("Hello, "+name, false)
	case application.EditCancel:
		m.input.Blur()
		m.edit.Cancel()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	m.edit.Set(m.input.Value())
	return m, cmd
}

// View renders the home view
func (m *HomeModel) View() string {
	notes := m.store.Notes()
	folders := m.store.Folders()

	v := NewViewBuilder()
	if m.Editing() {
		v.Line(styles.InputLabel.Render("Your name:")).
			Line(styles.InputFocused.Render(m.input.View())).
			BlankLine()
	} else {
		v.Title("Hello, " + m.store.Username())
	}
	v.Subtitle(fmt.Sprintf("%d notes in %d folders", len(notes), len(folders)))

	recent := slices.Clone(notes)
	slices.SortFunc(recent, func(a, b domain.Note) int { return b.ID - a.ID })
	if len(recent) > recentCount {
		recent = recent[:recentCount]
	}

	v.Line(styles.InputLabel.Render("Recent"))
	for _, n := range recent {
		v.Line(fmt.Sprintf("  %s %s", RenderNoteIcon(n.Icon, domain.IconColor(n, folders)), n.Name))
	}
	v.BlankLine().Help(HomeKeys.Username, HomeKeys.Back)
	return v.String()
}
