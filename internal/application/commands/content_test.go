package commands

import (
	"context"
	"testing"

	"noted/internal/domain"
)

func TestUpdateContentAndShow(t *testing.T) {
	nb := newTestNotebook(t)
	ctx := context.Background()
	f, _ := nb.AddFolder()
	nb.MoveNoteToFolder(1, domain.FolderRef(f.ID))

	payload := `[{"type":"heading","content":[{"type":"text","text":"Plan"}]}]`
	updated, err := NewUpdateContentCommand(nb, "1", payload).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Kind != domain.ContentStructured {
		t.Errorf("expected structured content, got %s", updated.Kind)
	}

	shown, err := NewShowNoteCommand(nb, "1").Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shown.Content.PlainText() != "Plan" {
		t.Errorf("expected plain text Plan, got %q", shown.Content.PlainText())
	}
	if shown.Folder == nil || shown.Folder.ID != f.ID {
		t.Errorf("expected folder %d, got %+v", f.ID, shown.Folder)
	}
	if shown.IconColor != f.Color {
		t.Errorf("expected icon color %s, got %s", f.Color, shown.IconColor)
	}
}

func TestSetIconCommand(t *testing.T) {
	nb := newTestNotebook(t)
	ctx := context.Background()

	msg, err := NewSetIconCommand(nb, "1", "⭐").Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !contains(msg, "⭐") {
		t.Errorf("unexpected message: %q", msg)
	}
	note, _ := nb.Note(1)
	if note.Icon != "⭐" {
		t.Errorf("expected star icon, got %q", note.Icon)
	}

	if _, err := NewSetIconCommand(nb, "1", "").Execute(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	note, _ = nb.Note(1)
	if !note.UsesDefaultIcon() {
		t.Errorf("expected default icon, got %q", note.Icon)
	}

	if err := (&SetIconCommand{NoteID: "1", Icon: "this is not an icon"}).Validate(); err == nil {
		t.Error("expected long icon to be rejected")
	}
}

func TestUsernameCommand(t *testing.T) {
	nb := newTestNotebook(t)
	ctx := context.Background()

	name, err := NewUsernameCommand(nb, "").Execute(ctx)
	if err != nil || name != domain.DefaultUsername {
		t.Errorf("expected default username, got %q (%v)", name, err)
	}

	name, err = NewUsernameCommand(nb, " Ada ").Execute(ctx)
	if err != nil || name != "Ada" {
		t.Errorf("expected Ada, got %q (%v)", name, err)
	}
}
