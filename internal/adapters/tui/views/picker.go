package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"noted/internal/adapters/tui/styles"
	"noted/internal/application"
	"noted/internal/domain"
)

// rootLabel is the picker entry for the root group
const rootLabel = "(root)"

// PickerKeyMap defines key bindings for the folder picker
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "move"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// pickerOption is a destination group; Folder is nil for the root
type pickerOption struct {
	Label  string
	Color  string
	Folder *int
}

// PickerModel picks a destination folder for a note, filtering folder
// names fuzzily as the user types
type PickerModel struct {
	ViewState
	store    *application.Store
	noteID   int
	noteName string
	input    textinput.Model
	options  []pickerOption
	filtered []pickerOption
	cursor   int
}

// NewPickerModel creates a new folder picker
func NewPickerModel(store *application.Store) *PickerModel {
	input := textinput.New()
	input.Placeholder = "Folder name..."
	input.CharLimit = 80

	return &PickerModel{store: store, input: input}
}

// SetSource prepares the picker for a note
func (m *PickerModel) SetSource(noteID int) {
	m.noteID = noteID
	m.noteName = ""
	if n, err := m.store.Note(noteID); err == nil {
		m.noteName = n.Name
	}

	m.options = []pickerOption{{Label: rootLabel}}
	for _, f := range m.store.Folders() {
		m.options = append(m.options, pickerOption{
			Label:  f.Name,
			Color:  f.Color,
			Folder: domain.FolderRef(f.ID),
		})
	}

	m.input.SetValue("")
	m.input.Focus()
	m.ClearMessage()
	m.filter()
}

// Init initializes the picker
func (m *PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the picker
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PickerKeys.Cancel):
			return m, func() tea.Msg { return CloseOverlayMsg{} }

		case key.Matches(msg, PickerKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Down):
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Submit):
			if len(m.filtered) == 0 {
				m.SetMessage("No matching folder", true)
				return m, nil
			}
			picked := FolderPickedMsg{NoteID: m.noteID, FolderID: domain.CloneFolderID(m.filtered[m.cursor].Folder)}
			return m, func() tea.Msg { return picked }
		}
	}

	var cmd tea.Cmd
	prev := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		m.filter()
	}
	return m, cmd
}

// filter narrows the options to fuzzy matches, best first
func (m *PickerModel) filter() {
	m.cursor = 0
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.filtered = m.options
		return
	}

	targets := make([]string, len(m.options))
	for i, o := range m.options {
		targets[i] = o.Label
	}
	matches := fuzzy.Find(query, targets)
	m.filtered = make([]pickerOption, 0, len(matches))
	for _, match := range matches {
		m.filtered = append(m.filtered, m.options[match.Index])
	}
}

// View renders the picker
func (m *PickerModel) View() string {
	v := NewViewBuilder().Title("Move Note")
	if m.noteName != "" {
		v.Line(styles.InputLabel.Render("Note:")).
			Line("  " + m.noteName).
			BlankLine()
	}

	v.Line(styles.InputLabel.Render("Destination:")).
		Line(styles.InputFocused.Render(m.input.View())).
		BlankLine()

	if len(m.filtered) == 0 {
		v.Muted("No matching folder")
	}
	for i, o := range m.filtered {
		label := o.Label
		if o.Folder != nil {
			label = fmt.Sprintf("%s %s", RenderFolderIcon(o.Color), o.Label)
		}
		if i == m.cursor {
			v.Line(styles.NodeSelected.Render(" > " + o.Label + " "))
		} else {
			v.Line("   " + label)
		}
	}

	v.BlankLine().
		Message(m.Message, m.MessageErr).
		Help(PickerKeys.Up, PickerKeys.Down, PickerKeys.Submit, PickerKeys.Cancel)
	return styles.App.Render(v.String())
}
