package commands

import (
	"context"
	"strings"
	"testing"

	"noted/internal/adapters/memory"
	"noted/internal/application"
)

func newTestNotebook(t *testing.T) *application.Store {
	t.Helper()
	s := application.NewStore(memory.New())
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func checkValidate(t *testing.T, err error, wantErr bool, errMsg string) {
	t.Helper()
	if wantErr {
		if err == nil {
			t.Errorf("expected error containing %q, got nil", errMsg)
			return
		}
		if !contains(err.Error(), errMsg) {
			t.Errorf("expected error containing %q, got %q", errMsg, err.Error())
		}
	} else if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
