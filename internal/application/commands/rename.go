package commands

import (
	"context"
	"fmt"
	"strings"

	"noted/internal/application"
	"noted/internal/domain"
	"noted/internal/ports"
)

// RenameResult contains the result of a rename operation
type RenameResult struct {
	Ref     domain.Ref
	NewName string
	Message string
}

// RenameCommand renames a note or a folder
type RenameCommand struct {
	nb      ports.Notebook
	ID      string
	NewName string
}

// NewRenameCommand creates a new RenameCommand
func NewRenameCommand(nb ports.Notebook, id, newName string) *RenameCommand {
	return &RenameCommand{
		nb:      nb,
		ID:      id,
		NewName: newName,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameCommand) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return &application.ValidationError{
			Field:   "id",
			Message: "ID is required",
		}
	}

	if strings.TrimSpace(c.NewName) == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "name is required",
		}
	}

	if _, err := domain.ParseRef(c.ID); err != nil {
		return &application.ValidationError{
			Field:   "id",
			Message: fmt.Sprintf("invalid ID: %s", c.ID),
		}
	}
	return nil
}

// Execute runs the rename command
func (c *RenameCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ref, _ := domain.ParseRef(c.ID)
	newName := strings.TrimSpace(c.NewName)

	var err error
	switch ref.Kind {
	case domain.KindFolder:
		_, err = c.nb.RenameFolder(ref.ID, newName)
	default:
		_, err = c.nb.RenameNote(ref.ID, newName)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to rename: %w", err)
	}

	return &RenameResult{
		Ref:     ref,
		NewName: newName,
		Message: fmt.Sprintf("Renamed %s %s to %s", ref.Kind, ref, newName),
	}, nil
}
