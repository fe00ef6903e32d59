package commands

import (
	"context"
	"fmt"
	"strings"

	"noted/internal/application"
	"noted/internal/domain"
	"noted/internal/ports"
)

// FolderResult contains the folder after an update
type FolderResult struct {
	Folder  domain.Folder
	Message string
}

// SetColorCommand changes a folder's color
type SetColorCommand struct {
	nb       ports.Notebook
	FolderID string
	Color    string
}

// NewSetColorCommand creates a new SetColorCommand
func NewSetColorCommand(nb ports.Notebook, folderID, color string) *SetColorCommand {
	return &SetColorCommand{
		nb:       nb,
		FolderID: folderID,
		Color:    color,
	}
}

// Validate checks the folder and color
func (c *SetColorCommand) Validate() error {
	if _, err := parseFolderID("folderID", c.FolderID); err != nil {
		return err
	}
	return application.ValidateColor("color", c.Color)
}

// Execute runs the command
func (c *SetColorCommand) Execute(ctx context.Context) (*FolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, _ := parseFolderID("folderID", c.FolderID)
	color := strings.ToUpper(strings.TrimSpace(c.Color))
	if err := c.nb.SetFolderColor(id, color); err != nil {
		return nil, fmt.Errorf("failed to set color: %w", err)
	}

	folder, err := c.nb.Folder(id)
	if err != nil {
		return nil, err
	}
	return &FolderResult{
		Folder:  folder,
		Message: fmt.Sprintf("Set %s color to %s", folder.Name, color),
	}, nil
}

// ToggleFolderCommand expands or collapses a folder
type ToggleFolderCommand struct {
	nb       ports.Notebook
	FolderID string
}

// NewToggleFolderCommand creates a new ToggleFolderCommand
func NewToggleFolderCommand(nb ports.Notebook, folderID string) *ToggleFolderCommand {
	return &ToggleFolderCommand{nb: nb, FolderID: folderID}
}

// Validate checks the folder reference
func (c *ToggleFolderCommand) Validate() error {
	_, err := parseFolderID("folderID", c.FolderID)
	return err
}

// Execute runs the command
func (c *ToggleFolderCommand) Execute(ctx context.Context) (*FolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, _ := parseFolderID("folderID", c.FolderID)
	expanded, err := c.nb.ToggleFolderExpanded(id)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle folder: %w", err)
	}

	folder, err := c.nb.Folder(id)
	if err != nil {
		return nil, err
	}
	state := "collapsed"
	if expanded {
		state = "expanded"
	}
	return &FolderResult{
		Folder:  folder,
		Message: fmt.Sprintf("%s %s", folder.Name, state),
	}, nil
}
