package domain

import "testing"

func TestParseRef(t *testing.T) {
	tests := []struct {
		input   string
		want    Ref
		wantErr bool
	}{
		{input: "3", want: NoteRef(3)},
		{input: "note-12", want: NoteRef(12)},
		{input: "folder-4", want: FolderItemRef(4)},
		{input: "  folder-1 ", want: FolderItemRef(1)},
		{input: "folder-", wantErr: true},
		{input: "0", wantErr: true},
		{input: "-2", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRef(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRefString(t *testing.T) {
	if got := FolderItemRef(2).String(); got != "folder-2" {
		t.Errorf("expected folder-2, got %s", got)
	}
	if got := NoteRef(5).String(); got != "5" {
		t.Errorf("expected 5, got %s", got)
	}
}
