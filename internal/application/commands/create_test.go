package commands

import (
	"context"
	"errors"
	"testing"

	"noted/internal/application"
)

func TestCreateNoteCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		folder  string
		wantErr bool
		errMsg  string
	}{
		{name: "root by default", folder: ""},
		{name: "explicit root", folder: "root"},
		{name: "folder reference", folder: "folder-2"},
		{name: "bare folder id", folder: "2"},
		{name: "invalid folder", folder: "abc", wantErr: true, errMsg: "invalid folder ID"},
		{name: "note reference", folder: "note-3", wantErr: true, errMsg: "expected folder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &CreateNoteCommand{Folder: tt.folder}
			checkValidate(t, cmd.Validate(), tt.wantErr, tt.errMsg)
		})
	}
}

func TestCreateNoteCommand_Execute(t *testing.T) {
	nb := newTestNotebook(t)
	ctx := context.Background()

	folder, err := NewCreateFolderCommand(nb, "Work").Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if folder.Folder.Name != "Work" {
		t.Errorf("expected folder named Work, got %s", folder.Folder.Name)
	}

	result, err := NewCreateNoteCommand(nb, "folder-1", "Standup").Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Note.ID != 2 || result.Note.Name != "Standup" {
		t.Errorf("expected note 2 named Standup, got %+v", result.Note)
	}
	if !contains(result.Message, "Work (folder-1)") {
		t.Errorf("expected message to name the folder, got %q", result.Message)
	}

	plain, err := NewCreateNoteCommand(nb, "", "").Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plain.Note.Name != "Note 3" || plain.Note.FolderID != nil {
		t.Errorf("expected generated root note, got %+v", plain.Note)
	}

	_, err = NewCreateNoteCommand(nb, "folder-9", "").Execute(ctx)
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected not found for missing folder, got %v", err)
	}
}
