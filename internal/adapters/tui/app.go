package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"noted/internal/adapters/editor"
	"noted/internal/adapters/preview"
	"noted/internal/adapters/tui/styles"
	"noted/internal/adapters/tui/views"
	"noted/internal/application"
	"noted/internal/ports"
)

// Overlay is a full-screen view shown over the panes
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayPicker
	OverlayConfirm
	OverlayHelp
)

// Focus is the pane receiving keys
type Focus int

const (
	FocusSidebar Focus = iota
	FocusMain
)

const (
	sidebarMinWidth = 24
	sidebarMaxWidth = 40
)

// App is the main TUI application model
type App struct {
	store  *application.Store
	opener ports.EditorOpener

	overlay Overlay
	focus   Focus

	sidebar *views.SidebarModel
	home    *views.HomeModel
	search  *views.SearchModel
	note    *views.NoteModel
	picker  *views.PickerModel
	confirm *views.ConfirmDeleteModel
	help    *views.HelpModel

	status    string
	statusErr bool

	width  int
	height int
}

// NewApp creates a new TUI application over a loaded store. opener may be
// nil, which disables external editing.
func NewApp(store *application.Store, opener ports.EditorOpener, renderer *preview.Renderer) *App {
	return &App{
		store:   store,
		opener:  opener,
		sidebar: views.NewSidebarModel(store),
		home:    views.NewHomeModel(store),
		search:  views.NewSearchModel(store),
		note:    views.NewNoteModel(store, renderer),
		picker:  views.NewPickerModel(store),
		confirm: views.NewConfirmDeleteModel(store),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.search.Init()
}

// Close stops background work owned by the views
func (a *App) Close() {
	a.search.Close()
}

// Focused returns the pane receiving keys
func (a *App) Focused() Focus {
	return a.focus
}

// ActiveOverlay returns the overlay being shown, if any
func (a *App) ActiveOverlay() Overlay {
	return a.overlay
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, nil

	case views.StatusMsg:
		a.status = msg.Text
		a.statusErr = msg.Err
		return a, nil

	case views.StoreChangedMsg:
		a.sidebar.Refresh()
		return a, nil

	case views.OpenNoteMsg:
		if err := a.store.Select(msg.ID); err != nil {
			a.setError(err)
			return a, nil
		}
		a.note.Reset()
		a.sidebar.Refresh()
		a.focus = FocusMain
		return a, nil

	case views.GoHomeMsg:
		a.store.SetView(application.ViewHome)
		a.sidebar.Refresh()
		a.focus = FocusMain
		return a, nil

	case views.SwitchToSearchMsg:
		a.store.SetView(application.ViewSearch)
		a.sidebar.Refresh()
		a.focus = FocusMain
		return a, a.search.Focus()

	case views.FocusSidebarMsg:
		a.focus = FocusSidebar
		return a, nil

	case views.SwitchToPickerMsg:
		a.overlay = OverlayPicker
		a.picker.SetSource(msg.NoteID)
		return a, a.picker.Init()

	case views.FolderPickedMsg:
		a.overlay = OverlayNone
		return a, a.sidebar.MoveNote(msg.NoteID, msg.FolderID)

	case views.SwitchToConfirmMsg:
		a.overlay = OverlayConfirm
		a.confirm.SetTarget(msg.Target, msg.Name)
		return a, nil

	case views.SwitchToHelpMsg:
		a.overlay = OverlayHelp
		return a, nil

	case views.CloseOverlayMsg:
		a.overlay = OverlayNone
		return a, nil

	case views.OpenExternalEditorMsg:
		return a, a.openEditor(msg.NoteID)

	case editorFinishedMsg:
		return a, a.finishEditor(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		a.status = ""
		return a, a.routeKey(msg)
	}

	// Search listens for debounced queries
	_, cmd := a.search.Update(msg)
	return a, cmd
}

func (a *App) routeKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch a.overlay {
	case OverlayPicker:
		_, cmd = a.picker.Update(msg)
		return cmd
	case OverlayConfirm:
		_, cmd = a.confirm.Update(msg)
		return cmd
	case OverlayHelp:
		_, cmd = a.help.Update(msg)
		return cmd
	}

	if a.focus == FocusSidebar {
		_, cmd = a.sidebar.Update(msg)
		return cmd
	}

	switch a.store.View() {
	case application.ViewSearch:
		if !a.search.Focused() && msg.String() == "esc" {
			a.focus = FocusSidebar
			return nil
		}
		_, cmd = a.search.Update(msg)
	case application.ViewNote:
		_, cmd = a.note.Update(msg)
	default:
		_, cmd = a.home.Update(msg)
	}
	return cmd
}

func (a *App) setError(err error) {
	a.status = err.Error()
	a.statusErr = true
}

type editorFinishedMsg struct {
	session *editor.Session
	err     error
}

func (a *App) openEditor(noteID int) tea.Cmd {
	if a.opener == nil {
		a.setError(fmt.Errorf("no editor configured"))
		return nil
	}
	note, err := a.store.Note(noteID)
	if err != nil {
		a.setError(err)
		return nil
	}

	session, err := editor.NewSession(note.ID, note.Content)
	if err != nil {
		a.setError(err)
		return nil
	}
	cmd, err := a.opener.Command(session.Path())
	if err != nil {
		session.Close()
		a.setError(err)
		return nil
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{session: session, err: err}
	})
}

func (a *App) finishEditor(msg editorFinishedMsg) tea.Cmd {
	defer msg.session.Close()
	if msg.err != nil {
		a.setError(msg.err)
		return nil
	}

	payload, changed, err := msg.session.Result()
	if err != nil {
		a.setError(err)
		return nil
	}
	if !changed {
		a.status = "No changes"
		return nil
	}
	if err := a.store.UpdateNoteContent(msg.session.NoteID, payload); err != nil {
		a.setError(err)
		return nil
	}
	a.status = "Saved"
	a.statusErr = false
	return nil
}

func (a *App) sidebarWidth() int {
	return min(max(a.width/3, sidebarMinWidth), sidebarMaxWidth)
}

func (a *App) resize() {
	bodyHeight := max(a.height-4, 1)
	sw := a.sidebarWidth()
	mainWidth := max(a.width-sw-6, 20)

	a.sidebar.SetSize(sw, bodyHeight)
	a.home.SetSize(mainWidth, bodyHeight)
	a.search.SetSize(mainWidth, bodyHeight)
	a.note.SetSize(mainWidth, bodyHeight)
	a.picker.SetSize(a.width, a.height)
	a.confirm.SetSize(a.width, a.height)
	a.help.SetSize(a.width, a.height)
}

// View renders the current view
func (a *App) View() string {
	switch a.overlay {
	case OverlayPicker:
		return a.picker.View()
	case OverlayConfirm:
		return a.confirm.View()
	case OverlayHelp:
		return a.help.View()
	}

	sidebarStyle := styles.Sidebar
	if a.focus == FocusSidebar {
		sidebarStyle = styles.SidebarFocused
	}
	left := sidebarStyle.Width(a.sidebarWidth()).Render(a.sidebar.View())

	var main string
	switch a.store.View() {
	case application.ViewSearch:
		main = a.search.View()
	case application.ViewNote:
		main = a.note.View()
	default:
		main = a.home.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, styles.Main.Render(main))
	return styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, body, "", a.statusLine()))
}

func (a *App) statusLine() string {
	if a.status != "" {
		return views.RenderMessage(a.status, a.statusErr)
	}
	return views.RenderHelpLine(
		views.SidebarKeys.NewNote,
		views.SidebarKeys.NewFolder,
		views.SidebarKeys.Search,
		views.SidebarKeys.Help,
		views.SidebarKeys.Quit,
	)
}
