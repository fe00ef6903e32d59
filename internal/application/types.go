package application

import "noted/internal/domain"

// Re-export domain types for use by adapters
type (
	Note     = domain.Note
	Folder   = domain.Folder
	TreeNode = domain.TreeNode
	Ref      = domain.Ref
	Kind     = domain.Kind
)

const (
	KindUnknown = domain.KindUnknown
	KindNote    = domain.KindNote
	KindFolder  = domain.KindFolder
)

// ParseRef parses a "folder-N" or note id reference
func ParseRef(s string) (Ref, error) {
	return domain.ParseRef(s)
}
