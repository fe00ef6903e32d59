package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"noted/internal/domain"
	"noted/internal/ports"

	_ "modernc.org/sqlite"
)

// StoreVersion is bumped whenever a collection is added. Collections are
// additive, so older databases stay readable.
//
//	2: notes, folders
//	3: settings
const StoreVersion = 3

// DatabaseFile is the file name used inside the data directory
const DatabaseFile = "notes.db"

// Gateway implements ports.Gateway using SQLite
type Gateway struct {
	db   *sql.DB
	path string
}

// Ensure Gateway implements ports.Gateway
var _ ports.Gateway = (*Gateway)(nil)

// Open opens (creating if needed) the notes database in dataDir
func Open(ctx context.Context, dataDir string) (*Gateway, error) {
	if len(dataDir) > 0 && dataDir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[1:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return OpenFile(ctx, filepath.Join(dataDir, DatabaseFile))
}

// OpenFile opens the database at an explicit path
func OpenFile(ctx context.Context, path string) (*Gateway, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Pragmas are per connection
	db.SetMaxOpenConns(1)

	_, err = db.ExecContext(ctx, `
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY,
			doc TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS folders (
			id INTEGER PRIMARY KEY,
			doc TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	g := &Gateway{db: db, path: path}
	if err := g.updateMeta(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return g, nil
}

// Path returns the database file path
func (g *Gateway) Path() string {
	return g.path
}

// Close closes the database connection
func (g *Gateway) Close() error {
	if g.db != nil {
		return g.db.Close()
	}
	return nil
}

// Version returns the store version recorded in the database
func (g *Gateway) Version(ctx context.Context) (int, error) {
	var value string
	err := g.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'store_version'`).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(value)
}

// updateMeta records the store version, never moving it backwards
func (g *Gateway) updateMeta(ctx context.Context) error {
	current, err := g.Version(ctx)
	if err != nil {
		return err
	}
	if current >= StoreVersion {
		return nil
	}
	_, err = g.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('store_version', ?)`,
		strconv.Itoa(StoreVersion))
	return err
}

// LoadNotes returns every stored note
func (g *Gateway) LoadNotes(ctx context.Context) ([]domain.Note, error) {
	return loadAll[domain.Note](ctx, g.db, tableNotes)
}

// LoadFolders returns every stored folder
func (g *Gateway) LoadFolders(ctx context.Context) ([]domain.Folder, error) {
	return loadAll[domain.Folder](ctx, g.db, tableFolders)
}

// ReplaceNotes replaces the stored notes with the given collection
func (g *Gateway) ReplaceNotes(ctx context.Context, notes []domain.Note) error {
	return replaceAll(ctx, g.db, tableNotes, notes, func(n domain.Note) int { return n.ID })
}

// ReplaceFolders replaces the stored folders with the given collection
func (g *Gateway) ReplaceFolders(ctx context.Context, folders []domain.Folder) error {
	return replaceAll(ctx, g.db, tableFolders, folders, func(f domain.Folder) int { return f.ID })
}

// Setting returns a stored setting and whether it exists
func (g *Gateway) Setting(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := g.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return value, true, nil
}

// SetSetting stores a setting
func (g *Gateway) SetSetting(ctx context.Context, key, value string) error {
	_, err := g.db.ExecContext(ctx, `INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}
