package editor

import (
	"fmt"
	"os"

	"noted/internal/domain"
)

// Session holds a note payload in a temporary file while an external
// editor runs
type Session struct {
	NoteID   int
	original string
	path     string
}

// NewSession writes payload to a temporary file. Structured payloads get a
// .json extension so editors pick a sensible mode.
func NewSession(noteID int, payload string) (*Session, error) {
	ext := ".txt"
	if domain.ParseContent(payload).Kind() == domain.ContentStructured {
		ext = ".json"
	}

	f, err := os.CreateTemp("", fmt.Sprintf("noted-%d-*%s", noteID, ext))
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(payload); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	return &Session{NoteID: noteID, original: payload, path: f.Name()}, nil
}

// Path returns the file to hand to the editor
func (s *Session) Path() string {
	return s.path
}

// Result reads the edited payload and reports whether it changed
func (s *Session) Result() (string, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false, fmt.Errorf("failed to read edited note: %w", err)
	}
	edited := string(data)
	return edited, edited != s.original, nil
}

// Close removes the temporary file
func (s *Session) Close() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
