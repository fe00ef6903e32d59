package commands

import (
	"context"
	"fmt"

	"noted/internal/application"
	"noted/internal/domain"
	"noted/internal/ports"
)

// MoveNoteResult contains the result of moving a note
type MoveNoteResult struct {
	Note    domain.Note
	Message string
}

// MoveNoteCommand moves a note to the end of a folder or the root
type MoveNoteCommand struct {
	nb          ports.Notebook
	NoteID      string
	Destination string // folder reference, or "root"
}

// NewMoveNoteCommand creates a new MoveNoteCommand
func NewMoveNoteCommand(nb ports.Notebook, noteID, destination string) *MoveNoteCommand {
	return &MoveNoteCommand{
		nb:          nb,
		NoteID:      noteID,
		Destination: destination,
	}
}

// Validate checks if the move operation is valid
func (c *MoveNoteCommand) Validate() error {
	if _, err := parseNoteID("noteID", c.NoteID); err != nil {
		return err
	}
	_, err := parseFolderTarget("folderID", c.Destination)
	return err
}

// Execute runs the move command
func (c *MoveNoteCommand) Execute(ctx context.Context) (*MoveNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	noteID, _ := parseNoteID("noteID", c.NoteID)
	folderID, _ := parseFolderTarget("folderID", c.Destination)

	note, err := c.nb.MoveNoteToFolder(noteID, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to move note: %w", err)
	}

	return &MoveNoteResult{
		Note:    note,
		Message: fmt.Sprintf("Moved note %d %s to %s", note.ID, note.Name, describeGroup(c.nb, note.FolderID)),
	}, nil
}

// DragResult contains the result of a drag-and-drop
type DragResult struct {
	Source  domain.Ref
	Target  domain.Ref
	Changed bool
	Message string
}

// DragCommand drops one sidebar item onto another, as the sidebar's drag
// and drop does
type DragCommand struct {
	nb     ports.Notebook
	Source string
	Target string
}

// NewDragCommand creates a new DragCommand
func NewDragCommand(nb ports.Notebook, source, target string) *DragCommand {
	return &DragCommand{
		nb:     nb,
		Source: source,
		Target: target,
	}
}

// Validate checks if the drag operation is valid
func (c *DragCommand) Validate() error {
	source, err := application.ValidateRef("sourceID", c.Source, domain.KindUnknown)
	if err != nil {
		return err
	}
	target, err := application.ValidateRef("targetID", c.Target, domain.KindUnknown)
	if err != nil {
		return err
	}
	return ValidateDrop(source, target)
}

// ValidateDrop rejects drops that can never change anything
func ValidateDrop(source, target domain.Ref) error {
	if source.Kind == domain.KindFolder && target.Kind == domain.KindNote {
		return &application.MoveError{
			SourceID: source.String(),
			DestID:   target.String(),
			Reason:   "folders can only be dropped onto folders",
		}
	}
	if source == target {
		return &application.MoveError{
			SourceID: source.String(),
			DestID:   target.String(),
			Reason:   "cannot drop an item onto itself",
		}
	}
	return nil
}

// Execute runs the drag command
func (c *DragCommand) Execute(ctx context.Context) (*DragResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	source, _ := domain.ParseRef(c.Source)
	target, _ := domain.ParseRef(c.Target)

	if err := c.exists(source); err != nil {
		return nil, fmt.Errorf("failed to drop: %w", err)
	}
	if err := c.exists(target); err != nil {
		return nil, fmt.Errorf("failed to drop: %w", err)
	}

	changed, err := c.nb.Drop(source, target)
	if err != nil {
		return nil, fmt.Errorf("failed to drop: %w", err)
	}

	msg := fmt.Sprintf("Dropped %s %s onto %s %s", source.Kind, source, target.Kind, target)
	if !changed {
		msg = "Nothing to change"
	}
	return &DragResult{
		Source:  source,
		Target:  target,
		Changed: changed,
		Message: msg,
	}, nil
}

func (c *DragCommand) exists(ref domain.Ref) error {
	if ref.Kind == domain.KindFolder {
		_, err := c.nb.Folder(ref.ID)
		return err
	}
	_, err := c.nb.Note(ref.ID)
	return err
}
