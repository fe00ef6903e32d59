package views

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/adapters/tui/styles"
	"noted/internal/application"
	"noted/internal/domain"
)

// SidebarKeyMap defines key bindings for the sidebar
type SidebarKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	NewNote   key.Binding
	NewFolder key.Binding
	Rename    key.Binding
	Delete    key.Binding
	Color     key.Binding
	Move      key.Binding
	MoveRoot  key.Binding
	Toggle    key.Binding
	DropUp    key.Binding
	DropDown  key.Binding
	Search    key.Binding
	Clear     key.Binding
	Home      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var SidebarKeys = SidebarKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter", "open"),
	),
	NewNote: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new note"),
	),
	NewFolder: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "new folder"),
	),
	Rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Color: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "color"),
	),
	Move: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "move"),
	),
	MoveRoot: key.NewBinding(
		key.WithKeys("M"),
		key.WithHelp("M", "to root"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "expand/collapse"),
	),
	DropUp: key.NewBinding(
		key.WithKeys("K"),
		key.WithHelp("K", "drop on previous"),
	),
	DropDown: key.NewBinding(
		key.WithKeys("J"),
		key.WithHelp("J", "drop on next"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Clear: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear filter"),
	),
	Home: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "home"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// SidebarModel is the folder and note tree
type SidebarModel struct {
	ViewState
	store  *application.Store
	rows   []*domain.TreeNode
	cursor int

	// inline rename, driven by the store's edit state
	renaming  bool
	renameRef domain.Ref
	input     textinput.Model
}

// NewSidebarModel creates a sidebar over the store
func NewSidebarModel(store *application.Store) *SidebarModel {
	input := textinput.New()
	input.CharLimit = 120
	input.Prompt = ""

	m := &SidebarModel{store: store, input: input}
	m.Refresh()
	return m
}

// Init initializes the sidebar
func (m *SidebarModel) Init() tea.Cmd {
	return nil
}

// Refresh rebuilds the rows from the store, keeping the cursor on the
// same item when it still exists
func (m *SidebarModel) Refresh() {
	var current domain.Ref
	if node := m.selectedNode(); node != nil {
		current = node.Ref()
	}
	m.rows = m.tree().Flatten()
	if !m.focus(current) {
		m.cursor = min(m.cursor, len(m.rows)-1)
		m.cursor = max(m.cursor, 0)
	}
}

// Filter returns the query narrowing the tree, if any. The search view
// shows its own results, so the tree is only filtered elsewhere.
func (m *SidebarModel) Filter() string {
	if m.store.View() == application.ViewSearch {
		return ""
	}
	return strings.TrimSpace(m.store.SearchQuery())
}

// tree keeps matching notes and the folders holding them
func (m *SidebarModel) tree() *domain.TreeNode {
	if m.Filter() == "" {
		return m.store.Tree()
	}
	root := domain.BuildTree(m.store.Results(), m.store.Folders())
	root.Children = slices.DeleteFunc(root.Children, func(n *domain.TreeNode) bool {
		return n.Kind == domain.KindFolder && len(n.Children) == 0
	})
	return root
}

// focus moves the cursor to ref and reports whether it is visible
func (m *SidebarModel) focus(ref domain.Ref) bool {
	if ref.Kind == domain.KindUnknown {
		return false
	}
	i := slices.IndexFunc(m.rows, func(n *domain.TreeNode) bool { return n.Ref() == ref })
	if i < 0 {
		return false
	}
	m.cursor = i
	return true
}

// Renaming reports whether the sidebar is capturing keys for a rename
func (m *SidebarModel) Renaming() bool {
	return m.renaming
}

// Selected returns the item under the cursor
func (m *SidebarModel) Selected() (domain.Ref, bool) {
	if node := m.selectedNode(); node != nil {
		return node.Ref(), true
	}
	return domain.Ref{}, false
}

func (m *SidebarModel) selectedNode() *domain.TreeNode {
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		return m.rows[m.cursor]
	}
	return nil
}

// Update handles messages for the sidebar
func (m *SidebarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case StoreChangedMsg:
		m.Refresh()
		return m, nil

	case tea.KeyMsg:
		if m.renaming {
			return m, m.updateRename(msg)
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *SidebarModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	node := m.selectedNode()

	switch {
	case key.Matches(msg, SidebarKeys.Quit):
		return tea.Quit

	case key.Matches(msg, SidebarKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return nil

	case key.Matches(msg, SidebarKeys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return nil

	case key.Matches(msg, SidebarKeys.Open):
		if node == nil {
			return nil
		}
		if node.Kind == domain.KindFolder {
			return m.toggle(node.ID)
		}
		id := node.ID
		return func() tea.Msg { return OpenNoteMsg{ID: id} }

	case key.Matches(msg, SidebarKeys.Toggle):
		if node != nil && node.Kind == domain.KindFolder {
			return m.toggle(node.ID)
		}
		return nil

	case key.Matches(msg, SidebarKeys.NewNote):
		return m.addNote(node)

	case key.Matches(msg, SidebarKeys.NewFolder):
		f, err := m.store.AddFolder()
		if err != nil {
			return failed(err)
		}
		m.Refresh()
		m.focus(domain.FolderItemRef(f.ID))
		return m.beginRename(domain.FolderItemRef(f.ID))

	case key.Matches(msg, SidebarKeys.Rename):
		if node == nil {
			return nil
		}
		return m.beginRename(node.Ref())

	case key.Matches(msg, SidebarKeys.Delete):
		if node == nil {
			return nil
		}
		target, name := node.Ref(), node.Name
		return func() tea.Msg { return SwitchToConfirmMsg{Target: target, Name: name} }

	case key.Matches(msg, SidebarKeys.Color):
		if node == nil || node.Kind != domain.KindFolder {
			return nil
		}
		color := nextPaletteColor(node.Color)
		if err := m.store.SetFolderColor(node.ID, color); err != nil {
			return failed(err)
		}
		m.Refresh()
		return changed(fmt.Sprintf("%s is now %s", node.Name, color))

	case key.Matches(msg, SidebarKeys.Move):
		if node == nil || node.Kind != domain.KindNote {
			return nil
		}
		id := node.ID
		return func() tea.Msg { return SwitchToPickerMsg{NoteID: id} }

	case key.Matches(msg, SidebarKeys.MoveRoot):
		if node == nil || node.Kind != domain.KindNote {
			return nil
		}
		return m.MoveNote(node.ID, nil)

	case key.Matches(msg, SidebarKeys.DropUp):
		return m.dropOnNeighbour(-1)

	case key.Matches(msg, SidebarKeys.DropDown):
		return m.dropOnNeighbour(1)

	case key.Matches(msg, SidebarKeys.Search):
		return func() tea.Msg { return SwitchToSearchMsg{} }

	case key.Matches(msg, SidebarKeys.Clear):
		if m.Filter() == "" {
			return nil
		}
		m.store.SetSearchQuery("")
		m.Refresh()
		return status("Filter cleared", false)

	case key.Matches(msg, SidebarKeys.Home):
		return func() tea.Msg { return GoHomeMsg{} }

	case key.Matches(msg, SidebarKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }
	}
	return nil
}

func (m *SidebarModel) toggle(id int) tea.Cmd {
	if _, err := m.store.ToggleFolderExpanded(id); err != nil {
		return failed(err)
	}
	m.Refresh()
	return nil
}

// addNote creates a note in the group of the row under the cursor
func (m *SidebarModel) addNote(node *domain.TreeNode) tea.Cmd {
	var folderID *int
	if node != nil {
		switch {
		case node.Kind == domain.KindFolder:
			folderID = domain.FolderRef(node.ID)
		case node.Parent != nil && node.Parent.Kind == domain.KindFolder:
			folderID = domain.FolderRef(node.Parent.ID)
		}
	}

	n, err := m.store.AddNote(folderID)
	if err != nil {
		return failed(err)
	}
	m.Refresh()
	m.focus(domain.NoteRef(n.ID))
	return tea.Batch(
		changed("Created "+n.Name),
		func() tea.Msg { return OpenNoteMsg{ID: n.ID} },
	)
}

// MoveNote moves a note to the end of a folder, or the root for nil
func (m *SidebarModel) MoveNote(id int, folderID *int) tea.Cmd {
	n, err := m.store.MoveNoteToFolder(id, folderID)
	if err != nil {
		return failed(err)
	}
	m.Refresh()
	m.focus(domain.NoteRef(id))

	dest := "root"
	if folderID != nil {
		if f, err := m.store.Folder(*folderID); err == nil {
			dest = f.Name
		}
	}
	return changed(fmt.Sprintf("Moved %s to %s", n.Name, dest))
}

// dropOnNeighbour drops the item under the cursor onto the row above
// (dir -1) or below (dir 1). Folders only land on folders.
func (m *SidebarModel) dropOnNeighbour(dir int) tea.Cmd {
	node := m.selectedNode()
	if node == nil {
		return nil
	}

	target := -1
	for i := m.cursor + dir; i >= 0 && i < len(m.rows); i += dir {
		if node.Kind == domain.KindNote || m.rows[i].Kind == domain.KindFolder {
			target = i
			break
		}
	}
	if target < 0 {
		return nil
	}

	source, dest := node.Ref(), m.rows[target]
	ok, err := m.store.Drop(source, dest.Ref())
	if err != nil {
		return failed(err)
	}
	if !ok {
		return nil
	}
	m.Refresh()
	m.focus(source)
	return changed(fmt.Sprintf("Dropped %s onto %s", node.Name, dest.Name))
}

func (m *SidebarModel) beginRename(ref domain.Ref) tea.Cmd {
	if err := m.store.BeginEdit(ref); err != nil {
		return failed(err)
	}
	value, _ := m.store.EditValue(ref)
	m.renaming = true
	m.renameRef = ref
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *SidebarModel) updateRename(msg tea.KeyMsg) tea.Cmd {
	m.store.SetEditValue(m.renameRef, m.input.Value())
	done, err := m.store.HandleEditKey(m.renameRef, msg.String())
	if done {
		m.renaming = false
		m.input.Blur()
		m.Refresh()
		if err != nil {
			return failed(err)
		}
		return changed("")
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetEditValue(m.renameRef, m.input.Value())
	return cmd
}

// nextPaletteColor cycles through the folder palette
func nextPaletteColor(current string) string {
	i := slices.IndexFunc(domain.FolderPalette, func(c string) bool {
		return strings.EqualFold(c, current)
	})
	return domain.FolderPalette[(i+1)%len(domain.FolderPalette)]
}

// View renders the sidebar
func (m *SidebarModel) View() string {
	var b strings.Builder

	width := max(m.Width-2, 12)
	activeID := m.store.SelectedID()
	activeView := m.store.View() == application.ViewNote

	if q := m.Filter(); q != "" {
		b.WriteString(styles.SearchMatch.Render("filter: "+q) + "\n")
	}
	for i, node := range m.window() {
		row := m.offset() + i
		b.WriteString(m.renderNode(node, row == m.cursor, activeView && node.Kind == domain.KindNote && node.ID == activeID, width))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// window returns the rows that fit the height, keeping the cursor visible
func (m *SidebarModel) window() []*domain.TreeNode {
	off := m.offset()
	end := len(m.rows)
	if m.Height > 0 {
		end = min(off+m.Height, len(m.rows))
	}
	return m.rows[off:end]
}

func (m *SidebarModel) offset() int {
	if m.Height <= 0 || m.cursor < m.Height {
		return 0
	}
	return m.cursor - m.Height + 1
}

func (m *SidebarModel) renderNode(node *domain.TreeNode, selected, active bool, width int) string {
	indent := strings.Repeat("  ", node.Depth())

	var prefix, icon string
	style := styles.NodeNote
	switch node.Kind {
	case domain.KindFolder:
		prefix = styles.TreeCollapsed
		if node.IsExpanded {
			prefix = styles.TreeExpanded
		}
		icon = RenderFolderIcon(node.Color)
		style = styles.NodeFolder
	default:
		prefix = styles.TreeLeaf
		icon = RenderNoteIcon(node.Icon, node.Color)
	}

	if selected && m.renaming && node.Ref() == m.renameRef {
		return fmt.Sprintf("%s%s%s %s", indent, styles.TreeBranch.Render(prefix), icon, m.input.View())
	}
	name := Truncate(node.Name, width-len(indent)-4)

	switch {
	case selected:
		name = styles.NodeSelected.Render(name)
	case active:
		name = styles.NodeActive.Render(name)
	default:
		name = style.Render(name)
	}
	return fmt.Sprintf("%s%s%s %s", indent, styles.TreeBranch.Render(prefix), icon, name)
}
