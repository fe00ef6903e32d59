package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noted/internal/application"
)

func TestSearch_DebouncedQuery(t *testing.T) {
	store := newTestStore(t)
	store.RenameNote(1, "Milk run")
	store.SetView(application.ViewSearch)

	m := NewSearchModel(store)
	defer m.Close()
	m.Focus()

	for _, r := range "milk" {
		m.Update(press(string(r)))
	}
	assert.Empty(t, store.SearchQuery(), "query must wait for the debounce")

	select {
	case <-m.applied:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced query was never applied")
	}
	assert.Equal(t, "milk", store.SearchQuery())
	require.Len(t, store.Results(), 1)
	assert.Contains(t, m.View(), "1 results")
}

func TestSearch_TabCyclesSort(t *testing.T) {
	store := newTestStore(t)
	m := NewSearchModel(store)
	defer m.Close()

	want := []application.SortMode{application.SortByDate, application.SortByContent, application.SortByName}
	for _, mode := range want {
		m.Update(press("tab"))
		assert.Equal(t, mode, store.SortMode())
	}
}

func TestSearch_SelectOpensNote(t *testing.T) {
	store := newTestStore(t)
	store.AddNote(nil)
	store.RenameNote(2, "Groceries")
	store.SetView(application.ViewSearch)
	store.SetSearchQuery("groc")

	m := NewSearchModel(store)
	defer m.Close()

	_, cmd := m.Update(press("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, OpenNoteMsg{ID: 2}, cmd())
}

func TestSearch_ResultWithNonASCIIContent(t *testing.T) {
	store := newTestStore(t)
	store.RenameNote(1, "A abc")
	store.AddNote(nil)
	require.NoError(t, store.UpdateNoteContent(2, "ȺȺȺȺȺȺ abc"))
	store.SetView(application.ViewSearch)
	store.SetSearchQuery("abc")

	m := NewSearchModel(store)
	defer m.Close()

	var out string
	require.NotPanics(t, func() { out = m.View() })
	assert.Contains(t, out, "2 results")
	assert.Contains(t, out, "abc")
}
