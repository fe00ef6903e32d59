package commands

import (
	"context"
	"testing"

	"noted/internal/domain"
)

func TestDeleteCommand_Execute(t *testing.T) {
	nb := newTestNotebook(t)
	ctx := context.Background()
	f, _ := nb.AddFolder()
	nb.AddNote(domain.FolderRef(f.ID))
	nb.AddNote(domain.FolderRef(f.ID))

	result, err := NewDeleteCommand(nb, "folder-1").Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Promoted != 2 {
		t.Errorf("expected 2 promoted notes, got %d", result.Promoted)
	}
	if len(nb.NotesIn(nil)) != 3 {
		t.Errorf("expected all notes at root, got %d", len(nb.NotesIn(nil)))
	}

	for _, id := range []string{"1", "2", "3"} {
		if _, err := NewDeleteCommand(nb, id).Execute(ctx); err != nil {
			t.Fatalf("unexpected error deleting %s: %v", id, err)
		}
	}
	notes := nb.Notes()
	if len(notes) != 1 || notes[0].ID != 4 {
		t.Errorf("expected a fresh default note 4, got %+v", notes)
	}
}

func TestDeleteCommand_Validate(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
		errMsg  string
	}{
		{id: "3"},
		{id: "folder-3"},
		{id: "", wantErr: true, errMsg: "id is required"},
		{id: "x", wantErr: true, errMsg: "invalid id"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			checkValidate(t, (&DeleteCommand{ID: tt.id}).Validate(), tt.wantErr, tt.errMsg)
		})
	}
}
