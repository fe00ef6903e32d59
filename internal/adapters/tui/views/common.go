package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/domain"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages shared between views and the app

// StoreChangedMsg asks every view to re-read the store
type StoreChangedMsg struct{}

// StatusMsg reports the outcome of an action in the status line
type StatusMsg struct {
	Text string
	Err  bool
}

// OpenNoteMsg opens a note in the main pane
type OpenNoteMsg struct {
	ID int
}

// GoHomeMsg switches the main pane to the home view
type GoHomeMsg struct{}

// SwitchToPickerMsg opens the folder picker for a note
type SwitchToPickerMsg struct {
	NoteID int
}

// FolderPickedMsg carries the picker's choice; a nil FolderID is the root
type FolderPickedMsg struct {
	NoteID   int
	FolderID *int
}

// SwitchToConfirmMsg asks to confirm deleting a sidebar item
type SwitchToConfirmMsg struct {
	Target domain.Ref
	Name   string
}

// SwitchToSearchMsg moves focus to the search input
type SwitchToSearchMsg struct{}

// SwitchToHelpMsg opens the help overlay
type SwitchToHelpMsg struct{}

// CloseOverlayMsg returns from an overlay (picker, confirm, help)
type CloseOverlayMsg struct{}

// FocusSidebarMsg gives the keyboard back to the sidebar
type FocusSidebarMsg struct{}

// OpenExternalEditorMsg edits a note's payload in $EDITOR
type OpenExternalEditorMsg struct {
	NoteID int
}

func status(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text, Err: isErr} }
}

func changed(text string) tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return StoreChangedMsg{} },
		status(text, false),
	)
}

func failed(err error) tea.Cmd {
	return status(err.Error(), true)
}
