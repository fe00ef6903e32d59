package views

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "fits", in: "Work", width: 10, want: "Work"},
		{name: "exact", in: "Groceries", width: 9, want: "Groceries"},
		{name: "cut", in: "hello world", width: 6, want: "hello…"},
		{name: "no width", in: "hello", width: 0, want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestHighlightMatch_NoQuery(t *testing.T) {
	if got := HighlightMatch("Groceries", "  "); got != "Groceries" {
		t.Errorf("expected text unchanged, got %q", got)
	}
}

func TestHighlightMatch_NonASCIIPrefix(t *testing.T) {
	got := HighlightMatch("ȺȺȺȺȺȺ abc", "ABC")
	if !strings.HasPrefix(got, "ȺȺȺȺȺȺ ") || !strings.Contains(got, "abc") {
		t.Errorf("expected text kept whole around the match, got %q", got)
	}
}
