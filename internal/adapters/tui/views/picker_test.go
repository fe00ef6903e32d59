package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPicker_FuzzyFilter(t *testing.T) {
	store := newTestStore(t)
	for _, name := range []string{"Work", "Personal", "Recipes"} {
		f, err := store.AddFolder()
		require.NoError(t, err)
		store.RenameFolder(f.ID, name)
	}

	m := NewPickerModel(store)
	m.SetSource(1)
	assert.Len(t, m.filtered, 4)
	assert.Equal(t, rootLabel, m.filtered[0].Label)

	m.input.SetValue("ork")
	m.filter()
	require.Len(t, m.filtered, 1)
	assert.Equal(t, "Work", m.filtered[0].Label)

	_, cmd := m.Update(press("enter"))
	require.NotNil(t, cmd)
	picked, ok := cmd().(FolderPickedMsg)
	require.True(t, ok)
	require.NotNil(t, picked.FolderID)
	assert.Equal(t, 1, *picked.FolderID)
	assert.Equal(t, 1, picked.NoteID)
}

func TestPicker_RootAndNoMatch(t *testing.T) {
	store := newTestStore(t)
	store.AddFolder()

	m := NewPickerModel(store)
	m.SetSource(1)

	_, cmd := m.Update(press("enter"))
	picked := cmd().(FolderPickedMsg)
	assert.Nil(t, picked.FolderID)

	m.input.SetValue("zzz")
	m.filter()
	_, cmd = m.Update(press("enter"))
	assert.Nil(t, cmd)
	assert.True(t, m.MessageErr)

	_, cmd = m.Update(press("esc"))
	assert.Equal(t, CloseOverlayMsg{}, cmd())
}

func TestPicker_CursorStaysInRange(t *testing.T) {
	store := newTestStore(t)
	store.AddFolder()

	m := NewPickerModel(store)
	m.SetSource(1)

	m.Update(press("down"))
	m.Update(press("down"))
	assert.Equal(t, 1, m.cursor)
	m.Update(press("up"))
	m.Update(press("up"))
	assert.Equal(t, 0, m.cursor)
}
