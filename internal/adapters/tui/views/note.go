package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/adapters/preview"
	"noted/internal/adapters/tui/styles"
	"noted/internal/application"
	"noted/internal/domain"
)

// NoteKeyMap defines key bindings for the note pane
type NoteKeyMap struct {
	Edit     key.Binding
	Save     key.Binding
	Cancel   key.Binding
	External key.Binding
	Copy     key.Binding
	Icon     key.Binding
}

var NoteKeys = NoteKeyMap{
	Edit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	External: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "$EDITOR"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Icon: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "icon"),
	),
}

// NoteMode is what the note pane is doing
type NoteMode int

const (
	NoteReading NoteMode = iota
	NoteEditing
	NoteIcon
)

// NoteModel shows the selected note and edits its content
type NoteModel struct {
	ViewState
	store    *application.Store
	renderer *preview.Renderer
	mode     NoteMode
	editor   textarea.Model
	icon     textinput.Model

	// copy writes to the system clipboard; tests replace it
	copy func(string) error
}

// NewNoteModel creates the note pane
func NewNoteModel(store *application.Store, renderer *preview.Renderer) *NoteModel {
	ta := textarea.New()
	ta.Placeholder = "Write something..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	icon := textinput.New()
	icon.Placeholder = "emoji, empty for default"
	icon.CharLimit = 8

	return &NoteModel{
		store:    store,
		renderer: renderer,
		editor:   ta,
		icon:     icon,
		copy:     clipboard.WriteAll,
	}
}

// Init initializes the note pane
func (m *NoteModel) Init() tea.Cmd {
	return nil
}

// Mode returns the current mode
func (m *NoteModel) Mode() NoteMode {
	return m.mode
}

// SetSize updates the view dimensions and the editor size
func (m *NoteModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.editor.SetWidth(max(width-4, 20))
	m.editor.SetHeight(max(height-8, 5))
}

// Reset leaves any edit without saving
func (m *NoteModel) Reset() {
	m.mode = NoteReading
	m.editor.Blur()
	m.icon.Blur()
}

// Update handles messages for the note pane
func (m *NoteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		note, ok := m.store.Selected()
		if !ok {
			return m, nil
		}
		switch m.mode {
		case NoteEditing:
			return m, m.updateEditing(note, msg)
		case NoteIcon:
			return m, m.updateIcon(note, msg)
		}
		return m, m.updateReading(note, msg)
	}
	return m, nil
}

func (m *NoteModel) updateReading(note domain.Note, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, NoteKeys.Cancel):
		return func() tea.Msg { return FocusSidebarMsg{} }

	case key.Matches(msg, NoteKeys.Edit):
		m.mode = NoteEditing
		m.editor.SetValue(domain.ParseContent(note.Content).PlainText())
		return m.editor.Focus()

	case key.Matches(msg, NoteKeys.External):
		id := note.ID
		return func() tea.Msg { return OpenExternalEditorMsg{NoteID: id} }

	case key.Matches(msg, NoteKeys.Copy):
		if err := m.copy(domain.ParseContent(note.Content).PlainText()); err != nil {
			return failed(fmt.Errorf("failed to copy: %w", err))
		}
		return status("Copied "+note.Name, false)

	case key.Matches(msg, NoteKeys.Icon):
		m.mode = NoteIcon
		m.icon.SetValue("")
		if !note.UsesDefaultIcon() {
			m.icon.SetValue(note.Icon)
		}
		return m.icon.Focus()
	}
	return nil
}

func (m *NoteModel) updateEditing(note domain.Note, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, NoteKeys.Save):
		payload := m.editor.Value()
		if domain.ParseContent(note.Content).Kind() == domain.ContentStructured {
			payload = domain.ParagraphDocument(payload)
		}
		m.Reset()
		if err := m.store.UpdateNoteContent(note.ID, payload); err != nil {
			return failed(err)
		}
		return changed("Saved " + note.Name)

	case key.Matches(msg, NoteKeys.Cancel):
		m.Reset()
		return status("Discarded changes", false)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return cmd
}

func (m *NoteModel) updateIcon(note domain.Note, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		icon := strings.TrimSpace(m.icon.Value())
		m.Reset()
		var err error
		if icon == "" {
			err = m.store.RemoveNoteIcon(note.ID)
		} else {
			err = m.store.SetNoteIcon(note.ID, icon)
		}
		if err != nil {
			return failed(err)
		}
		return changed("")
	case "esc":
		m.Reset()
		return nil
	}

	var cmd tea.Cmd
	m.icon, cmd = m.icon.Update(msg)
	return cmd
}

// View renders the note pane
func (m *NoteModel) View() string {
	note, ok := m.store.Selected()
	if !ok {
		return styles.MutedText.Render("No note selected")
	}
	folders := m.store.Folders()

	v := NewViewBuilder()
	title := fmt.Sprintf("%s %s", RenderNoteIcon(note.Icon, domain.IconColor(note, folders)), note.Name)
	v.Line(styles.Title.Render(title))

	location := "root"
	if note.FolderID != nil {
		if f, err := m.store.Folder(*note.FolderID); err == nil {
			location = RenderFolderIcon(f.Color) + " " + f.Name
		}
	}
	v.Line(styles.MutedText.Render("in ") + location).BlankLine()

	switch m.mode {
	case NoteEditing:
		v.Line(m.editor.View()).
			BlankLine().
			Help(NoteKeys.Save, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard")))
	case NoteIcon:
		v.Line(styles.InputLabel.Render("Icon:")).
			Line(styles.InputFocused.Render(m.icon.View())).
			BlankLine().
			Muted("enter to apply, esc to cancel")
	default:
		body := m.renderer.Render(domain.ParseContent(note.Content), max(m.Width-4, 20))
		if body == "" {
			body = styles.MutedText.Render("Empty note. Press enter to write.")
		}
		v.Line(body).
			BlankLine().
			Help(NoteKeys.Edit, NoteKeys.External, NoteKeys.Copy, NoteKeys.Icon, NoteKeys.Cancel)
	}
	return v.String()
}
