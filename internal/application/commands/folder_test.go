package commands

import (
	"context"
	"testing"
)

func TestSetColorCommand(t *testing.T) {
	nb := newTestNotebook(t)
	ctx := context.Background()
	nb.AddFolder()

	tests := []struct {
		name    string
		folder  string
		color   string
		wantErr bool
		errMsg  string
	}{
		{name: "valid", folder: "folder-1", color: "#ec4899"},
		{name: "bad color", folder: "folder-1", color: "pink", wantErr: true, errMsg: "expected a hex color"},
		{name: "bad folder", folder: "note-1", color: "#fff", wantErr: true, errMsg: "expected folder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &SetColorCommand{FolderID: tt.folder, Color: tt.color}
			checkValidate(t, cmd.Validate(), tt.wantErr, tt.errMsg)
		})
	}

	result, err := NewSetColorCommand(nb, "1", "#ec4899").Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Folder.Color != "#EC4899" {
		t.Errorf("expected normalized color, got %s", result.Folder.Color)
	}
}

func TestToggleFolderCommand(t *testing.T) {
	nb := newTestNotebook(t)
	ctx := context.Background()
	nb.AddFolder()

	result, err := NewToggleFolderCommand(nb, "folder-1").Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Folder.IsExpanded {
		t.Error("expected folder collapsed after first toggle")
	}
	if !contains(result.Message, "collapsed") {
		t.Errorf("unexpected message: %q", result.Message)
	}
}
