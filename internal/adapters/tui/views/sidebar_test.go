package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noted/internal/application"
	"noted/internal/domain"
)

func TestSidebar_NewNoteGoesToCursorGroup(t *testing.T) {
	store := newTestStore(t)
	f, err := store.AddFolder()
	require.NoError(t, err)

	m := NewSidebarModel(store)
	require.True(t, m.focus(domain.FolderItemRef(f.ID)))

	_, cmd := m.Update(press("n"))
	assert.NotNil(t, cmd)

	in := store.NotesIn(domain.FolderRef(f.ID))
	require.Len(t, in, 1)
	ref, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, domain.NoteRef(in[0].ID), ref)

	// A note row adds to its own group
	m.Update(press("n"))
	assert.Len(t, store.NotesIn(domain.FolderRef(f.ID)), 2)
}

func TestSidebar_NewFolderStartsRename(t *testing.T) {
	store := newTestStore(t)
	m := NewSidebarModel(store)

	m.Update(press("N"))
	require.True(t, m.Renaming())

	m.input.SetValue("Work")
	m.Update(press("enter"))
	assert.False(t, m.Renaming())

	folders := store.Folders()
	require.Len(t, folders, 1)
	assert.Equal(t, "Work", folders[0].Name)
}

func TestSidebar_RenameDiscardsEmptyAndEscape(t *testing.T) {
	store := newTestStore(t)
	m := NewSidebarModel(store)

	m.Update(press("r"))
	require.True(t, m.Renaming())
	m.input.SetValue("   ")
	m.Update(press("enter"))

	n, _ := store.Note(1)
	assert.Equal(t, domain.DefaultNoteName, n.Name)

	m.Update(press("r"))
	m.input.SetValue("Changed")
	m.Update(press("esc"))

	n, _ = store.Note(1)
	assert.Equal(t, domain.DefaultNoteName, n.Name)
	_, editing := store.EditValue(domain.NoteRef(1))
	assert.False(t, editing)
}

func TestSidebar_DropOnNeighbour(t *testing.T) {
	store := newTestStore(t)
	f, _ := store.AddFolder()
	store.AddNote(nil)

	m := NewSidebarModel(store)
	assert.Equal(t, []domain.Ref{domain.FolderItemRef(f.ID), domain.NoteRef(1), domain.NoteRef(2)}, rowRefs(m))

	// Note onto the note above reorders the root group
	require.True(t, m.focus(domain.NoteRef(2)))
	m.Update(press("K"))
	assert.Equal(t, []int{2, 1}, noteIDs(store.NotesIn(nil)))
	ref, _ := m.Selected()
	assert.Equal(t, domain.NoteRef(2), ref)

	// Note onto the folder above moves it in
	m.Update(press("K"))
	assert.Equal(t, []int{2}, noteIDs(store.NotesIn(domain.FolderRef(f.ID))))
	assert.Equal(t, []int{1}, noteIDs(store.NotesIn(nil)))
}

func TestSidebar_FolderDropSkipsNotes(t *testing.T) {
	store := newTestStore(t)
	a, _ := store.AddFolder()
	b, _ := store.AddFolder()
	store.AddNote(domain.FolderRef(a.ID))

	m := NewSidebarModel(store)
	require.True(t, m.focus(domain.FolderItemRef(b.ID)))
	m.Update(press("K"))

	folders := store.Folders()
	assert.Equal(t, b.ID, folders[0].ID)
	assert.Equal(t, a.ID, folders[1].ID)

	// Nothing above the first folder
	_, cmd := m.Update(press("K"))
	assert.Nil(t, cmd)
}

func TestSidebar_ToggleColorAndMoveToRoot(t *testing.T) {
	store := newTestStore(t)
	f, _ := store.AddFolder()
	store.MoveNoteToFolder(1, domain.FolderRef(f.ID))

	m := NewSidebarModel(store)
	require.Len(t, m.rows, 2)

	m.focus(domain.FolderItemRef(f.ID))
	m.Update(press("space"))
	assert.Len(t, m.rows, 1)
	m.Update(press("enter"))
	assert.Len(t, m.rows, 2)

	m.Update(press("c"))
	folder, _ := store.Folder(f.ID)
	assert.Equal(t, domain.FolderPalette[1], folder.Color)

	m.focus(domain.NoteRef(1))
	m.Update(press("M"))
	n, _ := store.Note(1)
	assert.Nil(t, n.FolderID)
}

func TestSidebar_RequestsOverlays(t *testing.T) {
	store := newTestStore(t)
	m := NewSidebarModel(store)

	_, cmd := m.Update(press("d"))
	require.NotNil(t, cmd)
	assert.Equal(t, SwitchToConfirmMsg{Target: domain.NoteRef(1), Name: domain.DefaultNoteName}, cmd())

	_, cmd = m.Update(press("m"))
	require.NotNil(t, cmd)
	assert.Equal(t, SwitchToPickerMsg{NoteID: 1}, cmd())

	_, cmd = m.Update(press("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, OpenNoteMsg{ID: 1}, cmd())
}

func TestNextPaletteColor(t *testing.T) {
	last := domain.FolderPalette[len(domain.FolderPalette)-1]
	assert.Equal(t, domain.FolderPalette[0], nextPaletteColor(last))
	assert.Equal(t, domain.FolderPalette[0], nextPaletteColor("#123456"))
	assert.Equal(t, domain.FolderPalette[2], nextPaletteColor(domain.FolderPalette[1]))
}

func TestSidebar_QueryFiltersOutsideSearch(t *testing.T) {
	store := newTestStore(t)
	f, _ := store.AddFolder()
	store.AddFolder()
	n, _ := store.AddNote(domain.FolderRef(f.ID))
	store.RenameNote(n.ID, "Milk run")
	store.SetSearchQuery("milk")

	m := NewSidebarModel(store)
	store.SetView(application.ViewSearch)
	m.Refresh()
	assert.Len(t, m.rows, 4, "search view leaves the tree alone")

	store.SetView(application.ViewHome)
	m.Refresh()
	assert.Equal(t, []domain.Ref{domain.FolderItemRef(f.ID), domain.NoteRef(n.ID)}, rowRefs(m))
	assert.Contains(t, m.View(), "filter: milk")

	m.Update(press("x"))
	assert.Empty(t, store.SearchQuery())
	assert.Len(t, m.rows, 4)
}
