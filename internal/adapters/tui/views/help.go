package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return CloseOverlayMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("noted help"))
	b.WriteString("\n\n")

	section(&b, "Sidebar",
		SidebarKeys.Up, SidebarKeys.Down, SidebarKeys.Open, SidebarKeys.Toggle,
		SidebarKeys.NewNote, SidebarKeys.NewFolder, SidebarKeys.Rename, SidebarKeys.Delete,
		SidebarKeys.Color, SidebarKeys.Move, SidebarKeys.MoveRoot,
		SidebarKeys.DropUp, SidebarKeys.DropDown,
	)
	section(&b, "Note",
		NoteKeys.Edit, NoteKeys.Save, NoteKeys.External, NoteKeys.Copy, NoteKeys.Icon,
	)
	section(&b, "Search",
		SidebarKeys.Search, SearchKeys.Sort, SearchKeys.Select, SidebarKeys.Clear,
	)
	section(&b, "General",
		SidebarKeys.Home, HomeKeys.Username, SidebarKeys.Help, SidebarKeys.Quit,
	)

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func section(b *strings.Builder, title string, bindings ...key.Binding) {
	b.WriteString(styles.InputLabel.Render(title))
	b.WriteString("\n")
	for _, k := range bindings {
		h := k.Help()
		b.WriteString(helpLine(h.Key, h.Desc))
	}
	b.WriteString("\n")
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 14)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if n := len([]rune(s)); n < length {
		return s + strings.Repeat(" ", length-n)
	}
	return s
}
