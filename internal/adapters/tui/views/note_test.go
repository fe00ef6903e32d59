package views

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noted/internal/adapters/preview"
	"noted/internal/domain"
)

func newTestNoteModel(t *testing.T) (*NoteModel, *[]string) {
	t.Helper()
	store := newTestStore(t)
	require.NoError(t, store.Select(1))

	m := NewNoteModel(store, preview.NewRenderer("notty"))
	m.SetSize(80, 24)
	var copied []string
	m.copy = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	return m, &copied
}

func TestNote_EditAndSave(t *testing.T) {
	m, _ := newTestNoteModel(t)

	m.Update(press("enter"))
	require.Equal(t, NoteEditing, m.Mode())

	m.editor.SetValue("buy milk")
	_, cmd := m.Update(press("ctrl+s"))
	assert.NotNil(t, cmd)
	assert.Equal(t, NoteReading, m.Mode())

	n, _ := m.store.Note(1)
	assert.Equal(t, "buy milk", n.Content)
}

func TestNote_SaveKeepsStructuredPayloads(t *testing.T) {
	m, _ := newTestNoteModel(t)
	require.NoError(t, m.store.UpdateNoteContent(1, `[{"type":"heading","content":[{"type":"text","text":"Plan"}]}]`))

	m.Update(press("enter"))
	assert.Equal(t, "Plan", m.editor.Value())
	m.editor.SetValue("Plan\nsecond line")
	m.Update(press("ctrl+s"))

	n, _ := m.store.Note(1)
	c := domain.ParseContent(n.Content)
	assert.Equal(t, domain.ContentStructured, c.Kind())
	assert.Equal(t, "Plan\nsecond line", c.PlainText())
}

func TestNote_EscapeDiscards(t *testing.T) {
	m, _ := newTestNoteModel(t)

	m.Update(press("enter"))
	m.editor.SetValue("draft")
	m.Update(press("esc"))

	n, _ := m.store.Note(1)
	assert.Empty(t, n.Content)
	assert.Equal(t, NoteReading, m.Mode())
}

func TestNote_Copy(t *testing.T) {
	m, copied := newTestNoteModel(t)
	require.NoError(t, m.store.UpdateNoteContent(1, "<p>hello</p>"))

	_, cmd := m.Update(press("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"hello"}, *copied)

	m.copy = func(string) error { return errors.New("no clipboard") }
	_, cmd = m.Update(press("y"))
	msg := cmd().(StatusMsg)
	assert.True(t, msg.Err)
}

func TestNote_Icon(t *testing.T) {
	m, _ := newTestNoteModel(t)

	m.Update(press("i"))
	require.Equal(t, NoteIcon, m.Mode())
	m.icon.SetValue("⭐")
	m.Update(press("enter"))

	n, _ := m.store.Note(1)
	assert.Equal(t, "⭐", n.Icon)

	m.Update(press("i"))
	assert.Equal(t, "⭐", m.icon.Value())
	m.icon.SetValue("")
	m.Update(press("enter"))

	n, _ = m.store.Note(1)
	assert.True(t, n.UsesDefaultIcon())
}

func TestNote_ViewShowsContent(t *testing.T) {
	m, _ := newTestNoteModel(t)
	require.NoError(t, m.store.UpdateNoteContent(1, `[{"type":"paragraph","content":[{"type":"text","text":"rendered body"}]}]`))

	assert.Contains(t, m.View(), "rendered body")
}
