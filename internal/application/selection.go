package application

import "noted/internal/domain"

// selection is the view state owned by the Store
type selection struct {
	noteID int
	view   View
	query  string
	sort   SortMode
}

// Select opens a note in the note view
func (s *Store) Select(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookupNote(id); err != nil {
		return err
	}
	s.sel.noteID = id
	s.sel.view = ViewNote
	return nil
}

// Selected returns the selected note. It is false only before Load.
func (s *Store) Selected() (domain.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.noteIndex(s.sel.noteID); i >= 0 {
		return s.notes[i].Clone(), true
	}
	return domain.Note{}, false
}

// SelectedID returns the selected note id, 0 before Load
func (s *Store) SelectedID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.noteID
}

// View returns the active view
func (s *Store) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.view
}

// SetView switches the active view
func (s *Store) SetView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.view = v
}

// SearchQuery returns the query currently applied to results
func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.query
}

// SetSearchQuery applies a query. Interactive input reaches here through a
// Debouncer.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.query = query
}

// SortMode returns the search sort mode
func (s *Store) SortMode() SortMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.sort
}

// SetSortMode changes the search sort mode
func (s *Store) SetSortMode(mode SortMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.sort = mode
}

// Results projects the notes through the current query. The search view
// ranks and sorts; other views only filter.
func (s *Store) Results() []domain.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := s.notesLocked()
	if s.sel.view == ViewSearch {
		return Search(notes, s.sel.query, s.sel.sort)
	}
	return Filter(notes, s.sel.query)
}
