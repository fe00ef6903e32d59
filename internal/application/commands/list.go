package commands

import (
	"context"
	"fmt"

	"noted/internal/domain"
	"noted/internal/ports"
)

// ListNotesResult contains one sibling group, sorted
type ListNotesResult struct {
	FolderID *int
	Notes    []domain.Note
}

// ListNotesCommand lists the notes of a folder, or of the root group
type ListNotesCommand struct {
	nb     ports.Notebook
	Folder string
	All    bool // every note in creation order, ignoring Folder
}

// NewListNotesCommand creates a new ListNotesCommand
func NewListNotesCommand(nb ports.Notebook, folder string, all bool) *ListNotesCommand {
	return &ListNotesCommand{nb: nb, Folder: folder, All: all}
}

// Validate checks the folder reference
func (c *ListNotesCommand) Validate() error {
	if c.All {
		return nil
	}
	_, err := parseFolderTarget("folderID", c.Folder)
	return err
}

// Execute runs the list command
func (c *ListNotesCommand) Execute(ctx context.Context) (*ListNotesResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.All {
		return &ListNotesResult{Notes: c.nb.Notes()}, nil
	}

	folderID, _ := parseFolderTarget("folderID", c.Folder)
	if folderID != nil {
		if _, err := c.nb.Folder(*folderID); err != nil {
			return nil, fmt.Errorf("failed to list notes: %w", err)
		}
	}
	return &ListNotesResult{
		FolderID: folderID,
		Notes:    c.nb.NotesIn(folderID),
	}, nil
}

// ListFoldersCommand lists all folders in order
type ListFoldersCommand struct {
	nb ports.Notebook
}

// NewListFoldersCommand creates a new ListFoldersCommand
func NewListFoldersCommand(nb ports.Notebook) *ListFoldersCommand {
	return &ListFoldersCommand{nb: nb}
}

// Execute runs the command
func (c *ListFoldersCommand) Execute(ctx context.Context) ([]domain.Folder, error) {
	return c.nb.Folders(), nil
}

// TreeCommand builds the sidebar tree
type TreeCommand struct {
	nb ports.Notebook
}

// NewTreeCommand creates a new TreeCommand
func NewTreeCommand(nb ports.Notebook) *TreeCommand {
	return &TreeCommand{nb: nb}
}

// Execute runs the command
func (c *TreeCommand) Execute(ctx context.Context) (*domain.TreeNode, error) {
	return c.nb.Tree(), nil
}
