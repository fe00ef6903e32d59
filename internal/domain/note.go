package domain

import (
	"fmt"
	"strings"
)

const (
	// DefaultNoteName is used for the bootstrap seed and for the note that
	// replaces the last deleted one.
	DefaultNoteName = "Note"
	// UntitledName is the fallback for a title that normalizes to empty
	UntitledName = "Untitled"
	// DefaultNoteIcon marks a note that uses the folder-derived glyph
	DefaultNoteIcon = "📝"
	// DefaultIconColor is the glyph color for root notes and uncoloured folders
	DefaultIconColor = "#3B82F6"
	// DefaultUsername is shown on the home view until the user picks a name
	DefaultUsername = "User"
)

// FolderPalette is the round-robin color palette for new folders
var FolderPalette = []string{
	"#3B82F6", // Blue
	"#EF4444", // Red
	"#10B981", // Green
	"#F59E0B", // Amber
	"#8B5CF6", // Violet
	"#EC4899", // Pink
	"#06B6D4", // Cyan
	"#84CC16", // Lime
	"#F97316", // Orange
	"#6B7280", // Gray
}

// Note is a single document in the sidebar. Content is an opaque payload
// produced by the editor.
type Note struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Content  string `json:"content"`
	Icon     string `json:"icon,omitempty"`
	FolderID *int   `json:"folderId,omitempty"`
	Order    int    `json:"order"`
}

// Folder groups notes. Folders form a single flat list.
type Folder struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	IsExpanded bool   `json:"isExpanded"`
	Order      int    `json:"order"`
	Color      string `json:"color,omitempty"`
}

// Clone returns a copy that does not share the FolderID pointer
func (n Note) Clone() Note {
	n.FolderID = CloneFolderID(n.FolderID)
	return n
}

// InGroup reports whether the note belongs to the sibling group of folderID
// (nil meaning the root group).
func (n Note) InGroup(folderID *int) bool {
	return SameFolder(n.FolderID, folderID)
}

// AtRoot reports whether the note is outside any folder
func (n Note) AtRoot() bool {
	return n.FolderID == nil
}

// UsesDefaultIcon reports whether the note should render the folder-derived glyph
func (n Note) UsesDefaultIcon() bool {
	return n.Icon == "" || strings.HasPrefix(n.Icon, DefaultNoteIcon)
}

// FolderRef returns a pointer to a folder id, for use as Note.FolderID
func FolderRef(id int) *int {
	return &id
}

// CloneFolderID copies a folder reference
func CloneFolderID(id *int) *int {
	if id == nil {
		return nil
	}
	return FolderRef(*id)
}

// SameFolder compares two folder references, treating nil as the root
func SameFolder(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// FormatFolderID renders a folder reference for messages
func FormatFolderID(id *int) string {
	if id == nil {
		return "root"
	}
	return fmt.Sprintf("folder-%d", *id)
}

// NormalizeName trims a title and falls back to UntitledName
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return UntitledName
	}
	return name
}

// DefaultNoteNameFor returns the generated name for a note created by the user
func DefaultNoteNameFor(id int) string {
	return fmt.Sprintf("%s %d", DefaultNoteName, id)
}

// DefaultFolderNameFor returns the generated name for a new folder
func DefaultFolderNameFor(id int) string {
	return fmt.Sprintf("Folder %d", id)
}

// PaletteColor picks the palette entry for a folder created when count
// folders already exist.
func PaletteColor(count int) string {
	if count < 0 {
		count = 0
	}
	return FolderPalette[count%len(FolderPalette)]
}

// IconColor returns the glyph color for a note: its folder's color, or the
// default color at root.
func IconColor(n Note, folders []Folder) string {
	if n.AtRoot() {
		return DefaultIconColor
	}
	for _, f := range folders {
		if f.ID == *n.FolderID && f.Color != "" {
			return f.Color
		}
	}
	return DefaultIconColor
}
