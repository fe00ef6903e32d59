package domain

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Groceries", want: "Groceries"},
		{input: "  padded  ", want: "padded"},
		{input: "", want: UntitledName},
		{input: "   ", want: UntitledName},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.input); got != tt.want {
			t.Errorf("NormalizeName(%q): expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestPaletteColor(t *testing.T) {
	if got := PaletteColor(0); got != "#3B82F6" {
		t.Errorf("expected first palette entry, got %s", got)
	}
	if got := PaletteColor(len(FolderPalette)); got != FolderPalette[0] {
		t.Errorf("expected palette to wrap, got %s", got)
	}
	if got := PaletteColor(11); got != FolderPalette[1] {
		t.Errorf("expected %s, got %s", FolderPalette[1], got)
	}
}

func TestIconColor(t *testing.T) {
	folders := []Folder{{ID: 1, Color: "#EF4444"}, {ID: 2}}

	tests := []struct {
		name string
		note Note
		want string
	}{
		{name: "root note", note: Note{ID: 1}, want: DefaultIconColor},
		{name: "colored folder", note: Note{ID: 2, FolderID: FolderRef(1)}, want: "#EF4444"},
		{name: "uncoloured folder", note: Note{ID: 3, FolderID: FolderRef(2)}, want: DefaultIconColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IconColor(tt.note, folders); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestUsesDefaultIcon(t *testing.T) {
	tests := []struct {
		icon string
		want bool
	}{
		{icon: "", want: true},
		{icon: DefaultNoteIcon, want: true},
		{icon: "⭐", want: false},
	}

	for _, tt := range tests {
		n := Note{Icon: tt.icon}
		if got := n.UsesDefaultIcon(); got != tt.want {
			t.Errorf("icon %q: expected %v, got %v", tt.icon, tt.want, got)
		}
	}
}

func TestNoteClone(t *testing.T) {
	n := Note{ID: 1, FolderID: FolderRef(3)}
	c := n.Clone()
	*c.FolderID = 9

	if *n.FolderID != 3 {
		t.Errorf("clone shares folder pointer: original now %d", *n.FolderID)
	}
}

func TestSameFolder(t *testing.T) {
	if !SameFolder(nil, nil) {
		t.Error("expected nil and nil to be the same group")
	}
	if SameFolder(nil, FolderRef(1)) {
		t.Error("expected root and folder to differ")
	}
	if !SameFolder(FolderRef(2), FolderRef(2)) {
		t.Error("expected equal ids to match")
	}
}
