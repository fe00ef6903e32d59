package commands

import (
	"context"
	"fmt"

	"noted/internal/application"
	"noted/internal/domain"
	"noted/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	Ref      domain.Ref
	Promoted int // notes moved to root by a folder delete
	Message  string
}

// DeleteCommand deletes a note or a folder. Deleting a folder moves its
// notes to the root.
type DeleteCommand struct {
	nb ports.Notebook
	ID string
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(nb ports.Notebook, id string) *DeleteCommand {
	return &DeleteCommand{
		nb: nb,
		ID: id,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCommand) Validate() error {
	_, err := application.ValidateRef("id", c.ID, domain.KindUnknown)
	return err
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ref, _ := domain.ParseRef(c.ID)
	result := &DeleteResult{Ref: ref}

	if ref.Kind == domain.KindFolder {
		folder, err := c.nb.Folder(ref.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to delete: %w", err)
		}
		result.Promoted = len(c.nb.NotesIn(domain.FolderRef(ref.ID)))
		if err := c.nb.DeleteFolder(ref.ID); err != nil {
			return nil, fmt.Errorf("failed to delete: %w", err)
		}
		result.Message = fmt.Sprintf("Deleted folder: %s %s (%d notes moved to root)", ref, folder.Name, result.Promoted)
		return result, nil
	}

	note, err := c.nb.Note(ref.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete: %w", err)
	}
	if err := c.nb.DeleteNote(ref.ID); err != nil {
		return nil, fmt.Errorf("failed to delete: %w", err)
	}
	result.Message = fmt.Sprintf("Deleted note: %d %s", note.ID, note.Name)
	return result, nil
}
