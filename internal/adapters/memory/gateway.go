// Package memory provides an in-process ports.Gateway for tests and
// ephemeral sessions.
package memory

import (
	"context"
	"errors"
	"sync"

	"noted/internal/domain"
	"noted/internal/ports"
)

// ErrInjected is returned by operations configured to fail
var ErrInjected = errors.New("injected storage failure")

// Gateway keeps collections in memory
type Gateway struct {
	mu       sync.Mutex
	notes    []domain.Note
	folders  []domain.Folder
	settings map[string]string

	// Failure injection
	FailLoad  bool
	FailWrite bool

	// writes counts successful replace calls per collection
	writes map[string]int
}

// Ensure Gateway implements ports.Gateway
var _ ports.Gateway = (*Gateway)(nil)

// New creates an empty gateway
func New() *Gateway {
	return &Gateway{
		settings: make(map[string]string),
		writes:   make(map[string]int),
	}
}

// Seed creates a gateway pre-populated with collections
func Seed(notes []domain.Note, folders []domain.Folder) *Gateway {
	g := New()
	g.notes = cloneNotes(notes)
	g.folders = append([]domain.Folder(nil), folders...)
	return g
}

func (g *Gateway) LoadNotes(ctx context.Context) ([]domain.Note, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailLoad {
		return nil, ErrInjected
	}
	return cloneNotes(g.notes), nil
}

func (g *Gateway) LoadFolders(ctx context.Context) ([]domain.Folder, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailLoad {
		return nil, ErrInjected
	}
	return append([]domain.Folder{}, g.folders...), nil
}

func (g *Gateway) ReplaceNotes(ctx context.Context, notes []domain.Note) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailWrite {
		return ErrInjected
	}
	g.notes = cloneNotes(notes)
	g.writes["notes"]++
	return nil
}

func (g *Gateway) ReplaceFolders(ctx context.Context, folders []domain.Folder) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailWrite {
		return ErrInjected
	}
	g.folders = append([]domain.Folder{}, folders...)
	g.writes["folders"]++
	return nil
}

func (g *Gateway) Setting(ctx context.Context, key string) (string, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailLoad {
		return "", false, ErrInjected
	}
	v, ok := g.settings[key]
	return v, ok, nil
}

func (g *Gateway) SetSetting(ctx context.Context, key, value string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailWrite {
		return ErrInjected
	}
	g.settings[key] = value
	g.writes["settings"]++
	return nil
}

func (g *Gateway) Close() error {
	return nil
}

// WriteCount returns the number of successful writes to a collection
func (g *Gateway) WriteCount(collection string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.writes[collection]
}

// SetFailWrite toggles write failures
func (g *Gateway) SetFailWrite(fail bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.FailWrite = fail
}

func cloneNotes(notes []domain.Note) []domain.Note {
	out := make([]domain.Note, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}
