package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tells notes and folders apart; their id spaces are independent
type Kind int

const (
	KindUnknown Kind = iota
	KindNote
	KindFolder
)

func (k Kind) String() string {
	switch k {
	case KindNote:
		return "note"
	case KindFolder:
		return "folder"
	default:
		return "unknown"
	}
}

// folderRefPrefix matches the sidebar drag ids: folders are "folder-N",
// notes are the bare id.
const folderRefPrefix = "folder-"

// Ref identifies a note or folder
type Ref struct {
	Kind Kind
	ID   int
}

// NoteRef returns a reference to a note
func NoteRef(id int) Ref {
	return Ref{Kind: KindNote, ID: id}
}

// FolderItemRef returns a reference to a folder
func FolderItemRef(id int) Ref {
	return Ref{Kind: KindFolder, ID: id}
}

func (r Ref) String() string {
	if r.Kind == KindFolder {
		return folderRefPrefix + strconv.Itoa(r.ID)
	}
	return strconv.Itoa(r.ID)
}

// ParseRef parses "folder-N", "note-N" or a bare note id
func ParseRef(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	kind := KindNote
	switch {
	case strings.HasPrefix(s, folderRefPrefix):
		kind = KindFolder
		s = strings.TrimPrefix(s, folderRefPrefix)
	case strings.HasPrefix(s, "note-"):
		s = strings.TrimPrefix(s, "note-")
	}

	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return Ref{}, fmt.Errorf("invalid reference: %q", s)
	}
	return Ref{Kind: kind, ID: id}, nil
}
