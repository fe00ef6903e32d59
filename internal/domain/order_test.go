package domain

import "testing"

func TestSiblings(t *testing.T) {
	notes := []Note{
		{ID: 1, Order: 2},
		{ID: 2, Order: 0, FolderID: FolderRef(7)},
		{ID: 3, Order: 1},
		{ID: 4, Order: 1},
		{ID: 5, Order: 0},
	}

	tests := []struct {
		name     string
		folderID *int
		want     []int
	}{
		{name: "root group sorted with id tie-break", folderID: nil, want: []int{5, 3, 4, 1}},
		{name: "folder group", folderID: FolderRef(7), want: []int{2}},
		{name: "empty group", folderID: FolderRef(9), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Siblings(notes, tt.folderID)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d notes, got %d", len(tt.want), len(got))
			}
			for i, n := range got {
				if n.ID != tt.want[i] {
					t.Errorf("position %d: expected id %d, got %d", i, tt.want[i], n.ID)
				}
			}
		})
	}
}

func TestNextNoteOrder(t *testing.T) {
	notes := []Note{
		{ID: 1, Order: 0},
		{ID: 2, Order: 4},
		{ID: 3, Order: 9, FolderID: FolderRef(1)},
	}

	tests := []struct {
		name     string
		folderID *int
		want     int
	}{
		{name: "root", folderID: nil, want: 5},
		{name: "folder", folderID: FolderRef(1), want: 10},
		{name: "empty folder", folderID: FolderRef(2), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextNoteOrder(notes, tt.folderID); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestNextFolderOrder(t *testing.T) {
	if got := NextFolderOrder(nil); got != 0 {
		t.Errorf("expected 0 for no folders, got %d", got)
	}
	folders := []Folder{{ID: 1, Order: 3}, {ID: 2, Order: 1}}
	if got := NextFolderOrder(folders); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
}

func TestSortFolders(t *testing.T) {
	folders := []Folder{{ID: 3, Order: 1}, {ID: 1, Order: 1}, {ID: 2, Order: 0}}
	SortFolders(folders)

	want := []int{2, 1, 3}
	for i, f := range folders {
		if f.ID != want[i] {
			t.Errorf("position %d: expected id %d, got %d", i, want[i], f.ID)
		}
	}
}
