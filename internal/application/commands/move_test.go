package commands

import (
	"context"
	"errors"
	"testing"

	"noted/internal/application"
	"noted/internal/domain"
)

func TestMoveNoteCommand_Validate(t *testing.T) {
	tests := []struct {
		name        string
		noteID      string
		destination string
		wantErr     bool
		errMsg      string
	}{
		{name: "to folder", noteID: "1", destination: "folder-2"},
		{name: "to root", noteID: "note-1", destination: "root"},
		{name: "empty note", noteID: "", destination: "folder-2", wantErr: true, errMsg: "note ID is required"},
		{name: "folder as source", noteID: "folder-1", destination: "root", wantErr: true, errMsg: "expected note"},
		{name: "bad destination", noteID: "1", destination: "somewhere", wantErr: true, errMsg: "invalid folder ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &MoveNoteCommand{NoteID: tt.noteID, Destination: tt.destination}
			checkValidate(t, cmd.Validate(), tt.wantErr, tt.errMsg)
		})
	}
}

func TestMoveNoteCommand_Execute(t *testing.T) {
	nb := newTestNotebook(t)
	ctx := context.Background()
	nb.AddFolder()

	result, err := NewMoveNoteCommand(nb, "1", "folder-1").Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Note.FolderID == nil || *result.Note.FolderID != 1 || result.Note.Order != 0 {
		t.Errorf("expected note in folder 1 with order 0, got %+v", result.Note)
	}

	_, err = NewMoveNoteCommand(nb, "1", "folder-5").Execute(ctx)
	var moveErr *application.MoveError
	if !errors.As(err, &moveErr) {
		t.Errorf("expected MoveError, got %v", err)
	}
}

func TestDragCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		target  string
		wantErr bool
		errMsg  string
	}{
		{name: "note onto note", source: "1", target: "2"},
		{name: "note onto folder", source: "1", target: "folder-1"},
		{name: "folder onto folder", source: "folder-1", target: "folder-2"},
		{name: "folder onto note", source: "folder-1", target: "2", wantErr: true, errMsg: "folders can only be dropped onto folders"},
		{name: "onto itself", source: "2", target: "note-2", wantErr: true, errMsg: "onto itself"},
		{name: "missing target", source: "2", target: "", wantErr: true, errMsg: "target ID is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &DragCommand{Source: tt.source, Target: tt.target}
			checkValidate(t, cmd.Validate(), tt.wantErr, tt.errMsg)
		})
	}
}

func TestDragCommand_Execute(t *testing.T) {
	nb := newTestNotebook(t)
	ctx := context.Background()
	nb.AddNote(nil)
	nb.AddNote(nil)

	result, err := NewDragCommand(nb, "3", "1").Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Changed {
		t.Error("expected the drop to change the order")
	}

	got := nb.NotesIn(nil)
	want := []int{3, 1, 2}
	for i, n := range got {
		if n.ID != want[i] || n.Order != i {
			t.Errorf("position %d: expected note %d order %d, got %d order %d", i, want[i], i, n.ID, n.Order)
		}
	}

	if _, err := NewDragCommand(nb, "1", "folder-4").Execute(ctx); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected not found for missing folder, got %v", err)
	}
	if err := ValidateDrop(domain.FolderItemRef(1), domain.NoteRef(1)); err == nil {
		t.Error("expected folder onto note to be rejected")
	}
}
