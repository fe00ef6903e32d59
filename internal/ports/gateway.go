package ports

import (
	"context"

	"noted/internal/domain"
)

// Gateway mirrors the note and folder collections to local storage.
// Replace operations have full-collection semantics: the stored collection
// is cleared and the given items are written in its place.
type Gateway interface {
	// Collections
	LoadNotes(ctx context.Context) ([]domain.Note, error)
	LoadFolders(ctx context.Context) ([]domain.Folder, error)
	ReplaceNotes(ctx context.Context, notes []domain.Note) error
	ReplaceFolders(ctx context.Context, folders []domain.Folder) error

	// Settings
	Setting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error

	// Lifecycle
	Close() error
}
