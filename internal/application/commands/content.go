package commands

import (
	"context"
	"fmt"
	"strings"

	"noted/internal/application"
	"noted/internal/domain"
	"noted/internal/ports"
)

// ShowNoteResult is a note with its content interpreted
type ShowNoteResult struct {
	Note      domain.Note
	Folder    *domain.Folder
	Content   domain.Content
	IconColor string
}

// ShowNoteCommand reads a single note
type ShowNoteCommand struct {
	nb     ports.Notebook
	NoteID string
}

// NewShowNoteCommand creates a new ShowNoteCommand
func NewShowNoteCommand(nb ports.Notebook, noteID string) *ShowNoteCommand {
	return &ShowNoteCommand{nb: nb, NoteID: noteID}
}

// Validate checks the note reference
func (c *ShowNoteCommand) Validate() error {
	_, err := parseNoteID("noteID", c.NoteID)
	return err
}

// Execute runs the command
func (c *ShowNoteCommand) Execute(ctx context.Context) (*ShowNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, _ := parseNoteID("noteID", c.NoteID)
	note, err := c.nb.Note(id)
	if err != nil {
		return nil, err
	}

	result := &ShowNoteResult{
		Note:      note,
		Content:   domain.ParseContent(note.Content),
		IconColor: domain.IconColor(note, c.nb.Folders()),
	}
	if note.FolderID != nil {
		if f, err := c.nb.Folder(*note.FolderID); err == nil {
			result.Folder = &f
		}
	}
	return result, nil
}

// UpdateContentResult contains the result of a content update
type UpdateContentResult struct {
	NoteID  int
	Kind    domain.ContentKind
	Message string
}

// UpdateContentCommand replaces a note's content payload
type UpdateContentCommand struct {
	nb      ports.Notebook
	NoteID  string
	Content string
}

// NewUpdateContentCommand creates a new UpdateContentCommand
func NewUpdateContentCommand(nb ports.Notebook, noteID, content string) *UpdateContentCommand {
	return &UpdateContentCommand{
		nb:      nb,
		NoteID:  noteID,
		Content: content,
	}
}

// Validate checks the note reference. Content is opaque and never validated.
func (c *UpdateContentCommand) Validate() error {
	_, err := parseNoteID("noteID", c.NoteID)
	return err
}

// Execute runs the command
func (c *UpdateContentCommand) Execute(ctx context.Context) (*UpdateContentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, _ := parseNoteID("noteID", c.NoteID)
	if err := c.nb.UpdateNoteContent(id, c.Content); err != nil {
		return nil, fmt.Errorf("failed to update content: %w", err)
	}

	kind := domain.ParseContent(c.Content).Kind()
	return &UpdateContentResult{
		NoteID:  id,
		Kind:    kind,
		Message: fmt.Sprintf("Updated note %d (%d bytes, %s)", id, len(c.Content), kind),
	}, nil
}

// SetIconCommand sets or clears a note's icon
type SetIconCommand struct {
	nb     ports.Notebook
	NoteID string
	Icon   string // empty restores the folder-derived glyph
}

// NewSetIconCommand creates a new SetIconCommand
func NewSetIconCommand(nb ports.Notebook, noteID, icon string) *SetIconCommand {
	return &SetIconCommand{nb: nb, NoteID: noteID, Icon: icon}
}

// Validate checks the note reference and icon length
func (c *SetIconCommand) Validate() error {
	if _, err := parseNoteID("noteID", c.NoteID); err != nil {
		return err
	}
	if len([]rune(strings.TrimSpace(c.Icon))) > 8 {
		return &application.ValidationError{
			Field:   "icon",
			Message: "icon must be a single emoji or glyph",
		}
	}
	return nil
}

// Execute runs the command
func (c *SetIconCommand) Execute(ctx context.Context) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	id, _ := parseNoteID("noteID", c.NoteID)
	icon := strings.TrimSpace(c.Icon)
	if icon == "" {
		if err := c.nb.RemoveNoteIcon(id); err != nil {
			return "", fmt.Errorf("failed to remove icon: %w", err)
		}
		return fmt.Sprintf("Removed icon from note %d", id), nil
	}

	if err := c.nb.SetNoteIcon(id, icon); err != nil {
		return "", fmt.Errorf("failed to set icon: %w", err)
	}
	return fmt.Sprintf("Set note %d icon to %s", id, icon), nil
}

// UsernameCommand reads or changes the display name
type UsernameCommand struct {
	nb   ports.Notebook
	Name string // empty only reads
}

// NewUsernameCommand creates a new UsernameCommand
func NewUsernameCommand(nb ports.Notebook, name string) *UsernameCommand {
	return &UsernameCommand{nb: nb, Name: name}
}

// Execute returns the username after any change
func (c *UsernameCommand) Execute(ctx context.Context) (string, error) {
	if strings.TrimSpace(c.Name) != "" {
		if _, err := c.nb.SetUsername(c.Name); err != nil {
			return "", fmt.Errorf("failed to set username: %w", err)
		}
	}
	return c.nb.Username(), nil
}
