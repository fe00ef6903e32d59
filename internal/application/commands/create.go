package commands

import (
	"context"
	"fmt"
	"strings"

	"noted/internal/domain"
	"noted/internal/ports"
)

// CreateNoteResult contains the result of creating a note
type CreateNoteResult struct {
	Note    domain.Note
	Message string
}

// CreateNoteCommand creates a note at the end of a folder or the root
type CreateNoteCommand struct {
	nb     ports.Notebook
	Folder string // empty or "root" for the root group
	Name   string // optional; the generated name is kept when empty
}

// NewCreateNoteCommand creates a new CreateNoteCommand
func NewCreateNoteCommand(nb ports.Notebook, folder, name string) *CreateNoteCommand {
	return &CreateNoteCommand{
		nb:     nb,
		Folder: folder,
		Name:   name,
	}
}

// Validate checks if the create operation is valid
func (c *CreateNoteCommand) Validate() error {
	_, err := parseFolderTarget("folderID", c.Folder)
	return err
}

// Execute runs the create note command
func (c *CreateNoteCommand) Execute(ctx context.Context) (*CreateNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	folderID, _ := parseFolderTarget("folderID", c.Folder)
	if folderID != nil {
		if _, err := c.nb.Folder(*folderID); err != nil {
			return nil, fmt.Errorf("failed to create note: %w", err)
		}
	}

	note, err := c.nb.AddNote(folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	if name := strings.TrimSpace(c.Name); name != "" {
		if _, err := c.nb.RenameNote(note.ID, name); err != nil {
			return nil, fmt.Errorf("failed to name note: %w", err)
		}
		note.Name = name
	}

	return &CreateNoteResult{
		Note:    note,
		Message: fmt.Sprintf("Created note: %d %s in %s", note.ID, note.Name, describeGroup(c.nb, note.FolderID)),
	}, nil
}

// CreateFolderResult contains the result of creating a folder
type CreateFolderResult struct {
	Folder  domain.Folder
	Message string
}

// CreateFolderCommand creates a folder at the end of the folder list
type CreateFolderCommand struct {
	nb   ports.Notebook
	Name string // optional
}

// NewCreateFolderCommand creates a new CreateFolderCommand
func NewCreateFolderCommand(nb ports.Notebook, name string) *CreateFolderCommand {
	return &CreateFolderCommand{
		nb:   nb,
		Name: name,
	}
}

// Execute runs the create folder command
func (c *CreateFolderCommand) Execute(ctx context.Context) (*CreateFolderResult, error) {
	folder, err := c.nb.AddFolder()
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	if name := strings.TrimSpace(c.Name); name != "" {
		if _, err := c.nb.RenameFolder(folder.ID, name); err != nil {
			return nil, fmt.Errorf("failed to name folder: %w", err)
		}
		folder.Name = name
	}

	return &CreateFolderResult{
		Folder:  folder,
		Message: fmt.Sprintf("Created folder: %s %s", domain.FolderItemRef(folder.ID), folder.Name),
	}, nil
}
