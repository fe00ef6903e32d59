package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Collection tables. Each row is keyed by id and holds the JSON document.
const (
	tableNotes   = "notes"
	tableFolders = "folders"
)

// loadAll reads every document of a collection. Row order is unspecified.
func loadAll[T any](ctx context.Context, db *sql.DB, table string) ([]T, error) {
	rows, err := db.QueryContext(ctx, `SELECT doc FROM `+table)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", table, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		var item T
		if err := json.Unmarshal([]byte(doc), &item); err != nil {
			return nil, fmt.Errorf("failed to decode %s row: %w", table, err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// replaceAll clears a collection and writes items in its place, in one
// transaction.
func replaceAll[T any](ctx context.Context, db *sql.DB, table string, items []T, id func(T) int) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO `+table+` (id, doc) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		doc, mErr := json.Marshal(item)
		if mErr != nil {
			err = fmt.Errorf("failed to encode %s row: %w", table, mErr)
			return err
		}
		if _, err = stmt.ExecContext(ctx, id(item), string(doc)); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table, err)
	}
	return nil
}
