package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/adapters/tui/styles"
	"noted/internal/application"
	"noted/internal/domain"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Sort   key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Sort: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "sort"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// queryAppliedMsg arrives after the debounced query reached the store
type queryAppliedMsg struct{}

// SearchModel is the search pane. Keystrokes are debounced before the
// query reaches the store.
type SearchModel struct {
	ViewState
	store     *application.Store
	input     textinput.Model
	debouncer *application.Debouncer[string]
	applied   chan struct{}
	cursor    int
}

// NewSearchModel creates a new search view model
func NewSearchModel(store *application.Store) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search notes..."
	input.CharLimit = 200

	m := &SearchModel{
		store:   store,
		input:   input,
		applied: make(chan struct{}, 1),
	}
	m.debouncer = application.NewDebouncer(application.SearchDebounce, func(q string) {
		store.SetSearchQuery(q)
		select {
		case m.applied <- struct{}{}:
		default:
		}
	})
	return m
}

// Init starts listening for applied queries
func (m *SearchModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForQuery())
}

func (m *SearchModel) waitForQuery() tea.Cmd {
	return func() tea.Msg {
		<-m.applied
		return queryAppliedMsg{}
	}
}

// Focus puts the cursor in the input, restoring the current query
func (m *SearchModel) Focus() tea.Cmd {
	m.input.SetValue(m.store.SearchQuery())
	m.input.CursorEnd()
	return m.input.Focus()
}

// Blur releases the keyboard
func (m *SearchModel) Blur() {
	m.input.Blur()
}

// Focused reports whether the input has the keyboard
func (m *SearchModel) Focused() bool {
	return m.input.Focused()
}

// Close drops any pending query
func (m *SearchModel) Close() {
	m.debouncer.Cancel()
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case queryAppliedMsg:
		m.cursor = 0
		return m, m.waitForQuery()

	case tea.KeyMsg:
		results := m.store.Results()
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			m.Blur()
			return m, func() tea.Msg { return FocusSidebarMsg{} }

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < len(results)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Sort):
			mode := m.store.SortMode().Next()
			m.store.SetSortMode(mode)
			m.cursor = 0
			return m, status("Sorted by "+mode.String(), false)

		case key.Matches(msg, SearchKeys.Select):
			if m.cursor >= 0 && m.cursor < len(results) {
				id := results[m.cursor].ID
				m.Blur()
				return m, func() tea.Msg { return OpenNoteMsg{ID: id} }
			}
			return m, nil
		}

		var cmd tea.Cmd
		prev := m.input.Value()
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != prev {
			m.debouncer.Push(m.input.Value())
		}
		return m, cmd
	}
	return m, nil
}

// View renders the search view
func (m *SearchModel) View() string {
	query := m.store.SearchQuery()
	results := m.store.Results()

	v := NewViewBuilder().Title("Search")
	input := styles.InputField
	if m.input.Focused() {
		input = styles.InputFocused
	}
	v.Line(input.Render(m.input.View())).
		Line(styles.SortBadge.Render("sort: " + m.store.SortMode().String())).
		BlankLine()

	switch {
	case strings.TrimSpace(query) == "":
		v.Muted("Type to search note names and contents")
	case len(results) == 0:
		v.Muted("No notes found")
	default:
		v.Muted(fmt.Sprintf("%d results", len(results)))
		folders := m.store.Folders()
		for i, n := range m.visible(results) {
			v.Line(m.renderResult(n, folders, i == m.cursor, query))
		}
	}

	v.BlankLine().Help(SearchKeys.Up, SearchKeys.Down, SearchKeys.Select, SearchKeys.Sort, SearchKeys.Cancel)
	return v.String()
}

func (m *SearchModel) visible(results []domain.Note) []domain.Note {
	limit := len(results)
	if m.Height > 8 {
		limit = min(limit, m.Height-8)
	}
	return results[:limit]
}

func (m *SearchModel) renderResult(n domain.Note, folders []domain.Folder, selected bool, query string) string {
	icon := RenderNoteIcon(n.Icon, domain.IconColor(n, folders))
	if selected {
		return fmt.Sprintf("%s %s", icon, styles.NodeSelected.Render(" "+n.Name+" "))
	}

	line := fmt.Sprintf("%s %s", icon, HighlightMatch(n.Name, query))
	text := domain.ParseContent(n.Content).PlainText()
	if start, _ := domain.IndexFold(text, strings.TrimSpace(query)); start >= 0 {
		snippet := Truncate(strings.Join(strings.Fields(text[start:]), " "), max(m.Width-len(n.Name)-8, 20))
		line += "  " + styles.MutedText.Render(snippet)
	}
	return line
}
