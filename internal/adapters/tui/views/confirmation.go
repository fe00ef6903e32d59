package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/adapters/tui/styles"
	"noted/internal/application"
	"noted/internal/domain"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmDeleteModel asks before deleting a note or a folder
type ConfirmDeleteModel struct {
	ViewState
	store  *application.Store
	target domain.Ref
	name   string
	Keys   ConfirmKeyMap
}

// NewConfirmDeleteModel creates a new delete confirmation
func NewConfirmDeleteModel(store *application.Store) *ConfirmDeleteModel {
	return &ConfirmDeleteModel{store: store, Keys: DefaultConfirmKeys}
}

// SetTarget sets the item to delete
func (m *ConfirmDeleteModel) SetTarget(target domain.Ref, name string) {
	m.target = target
	m.name = name
}

// Init initializes the confirmation
func (m *ConfirmDeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation
func (m *ConfirmDeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	closeOverlay := func() tea.Msg { return CloseOverlayMsg{} }
	switch {
	case key.Matches(keyMsg, m.Keys.Cancel):
		return m, closeOverlay
	case key.Matches(keyMsg, m.Keys.Confirm):
		if err := m.delete(); err != nil {
			return m, tea.Batch(closeOverlay, failed(err))
		}
		return m, tea.Batch(closeOverlay, changed(fmt.Sprintf("Deleted %s", m.name)))
	}
	return m, nil
}

func (m *ConfirmDeleteModel) delete() error {
	if m.target.Kind == domain.KindFolder {
		return m.store.DeleteFolder(m.target.ID)
	}
	return m.store.DeleteNote(m.target.ID)
}

// View renders the confirmation
func (m *ConfirmDeleteModel) View() string {
	kind := "Note"
	detail := ""
	if m.target.Kind == domain.KindFolder {
		kind = "Folder"
		if n := len(m.store.NotesIn(domain.FolderRef(m.target.ID))); n > 0 {
			detail = fmt.Sprintf("Its %d notes will move to the root.", n)
		}
	}

	v := NewViewBuilder().
		Title("Delete " + kind).
		Line(styles.InputLabel.Render("Delete " + kind + ":")).
		Line("  " + m.name).
		BlankLine()
	if detail != "" {
		v.Muted(detail).BlankLine()
	}
	v.Raw(RenderConfirmPrompt("Are you sure?"))
	return styles.App.Render(v.String())
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	return question + " " +
		styles.HelpKey.Render("y") + styles.HelpDesc.Render(" to confirm, ") +
		styles.HelpKey.Render("n") + styles.HelpDesc.Render(" to cancel")
}
