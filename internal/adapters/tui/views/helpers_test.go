package views

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"noted/internal/adapters/memory"
	"noted/internal/application"
	"noted/internal/domain"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newTestStore(t *testing.T) *application.Store {
	t.Helper()
	s := application.NewStore(memory.New())
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// press builds the key message bubbletea delivers for a key name
func press(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func rowRefs(m *SidebarModel) []domain.Ref {
	refs := make([]domain.Ref, len(m.rows))
	for i, n := range m.rows {
		refs[i] = n.Ref()
	}
	return refs
}

func noteIDs(notes []domain.Note) []int {
	ids := make([]int, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	return ids
}
