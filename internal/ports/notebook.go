package ports

import "noted/internal/domain"

// Notebook is the mutation and read surface of the note store, used by the
// CLI and MCP commands
type Notebook interface {
	// Create operations
	AddNote(folderID *int) (domain.Note, error)
	AddFolder() (domain.Folder, error)

	// Update operations
	RenameNote(id int, name string) (bool, error)
	RenameFolder(id int, name string) (bool, error)
	MoveNoteToFolder(id int, folderID *int) (domain.Note, error)
	Drop(source, target domain.Ref) (bool, error)
	SetFolderColor(id int, color string) error
	ToggleFolderExpanded(id int) (bool, error)
	UpdateNoteContent(id int, content string) error
	SetNoteIcon(id int, icon string) error
	RemoveNoteIcon(id int) error
	SetUsername(name string) (bool, error)

	// Delete operations
	DeleteNote(id int) error
	DeleteFolder(id int) error

	// Read operations
	Notes() []domain.Note
	Folders() []domain.Folder
	NotesIn(folderID *int) []domain.Note
	Note(id int) (domain.Note, error)
	Folder(id int) (domain.Folder, error)
	Tree() *domain.TreeNode
	Username() string
}
