package application

import "strings"

// EditState is the rename state of a note, folder or the username
type EditState int

const (
	Viewing EditState = iota
	Editing
)

func (s EditState) String() string {
	if s == Editing {
		return "editing"
	}
	return "viewing"
}

// Edit holds an in-progress rename. The zero value is Viewing.
type Edit struct {
	state EditState
	value string
}

// State returns the current state
func (e *Edit) State() EditState {
	return e.state
}

// Value returns the pending edit value
func (e *Edit) Value() string {
	return e.value
}

// Begin enters Editing with the current name as the edit value
func (e *Edit) Begin(current string) {
	e.state = Editing
	e.value = current
}

// Set replaces the edit value. Ignored while Viewing.
func (e *Edit) Set(value string) {
	if e.state == Editing {
		e.value = value
	}
}

// Save leaves Editing and returns the trimmed value to commit. ok is false
// when the value is empty or no edit was in progress; the name then stays
// as it was.
func (e *Edit) Save() (name string, ok bool) {
	if e.state != Editing {
		return "", false
	}
	name = strings.TrimSpace(e.value)
	e.state = Viewing
	e.value = ""
	return name, name != ""
}

// Cancel leaves Editing and discards the edit value
func (e *Edit) Cancel() {
	e.state = Viewing
	e.value = ""
}

// EditAction is what a key press means while editing
type EditAction int

const (
	EditNone EditAction = iota
	EditSave
	EditCancel
)

// EditKeyAction maps enter to save and escape to cancel
func EditKeyAction(key string) EditAction {
	switch strings.ToLower(key) {
	case "enter":
		return EditSave
	case "esc", "escape":
		return EditCancel
	default:
		return EditNone
	}
}
