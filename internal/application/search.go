package application

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"noted/internal/domain"
)

// View is the active top-level pane
type View int

const (
	ViewHome View = iota
	ViewSearch
	ViewNote
)

func (v View) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewNote:
		return "note"
	default:
		return "home"
	}
}

// SortMode orders search results
type SortMode int

const (
	SortByName SortMode = iota
	SortByDate
	SortByContent
)

func (m SortMode) String() string {
	switch m {
	case SortByDate:
		return "date"
	case SortByContent:
		return "content"
	default:
		return "name"
	}
}

// Next cycles name -> date -> content -> name
func (m SortMode) Next() SortMode {
	return (m + 1) % 3
}

// ParseSortMode parses "name", "date" or "content"
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return SortByName, nil
	case "date":
		return SortByDate, nil
	case "content":
		return SortByContent, nil
	default:
		return SortByName, &ValidationError{
			Field:   "sort",
			Message: fmt.Sprintf("unknown sort mode %q (expected name, date or content)", s),
		}
	}
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func nameMatches(n domain.Note, q string) bool {
	return strings.Contains(strings.ToLower(n.Name), q)
}

func matches(n domain.Note, q string) bool {
	return nameMatches(n, q) || strings.Contains(strings.ToLower(n.Content), q)
}

// Filter returns notes whose name or content contains query, case
// insensitively, in their given order. A blank query returns every note.
func Filter(notes []domain.Note, query string) []domain.Note {
	q := normalizeQuery(query)
	if q == "" {
		return slices.Clone(notes)
	}
	result := []domain.Note{}
	for _, n := range notes {
		if matches(n, q) {
			result = append(result, n)
		}
	}
	return result
}

// Search filters like Filter, then ranks name matches before content-only
// matches and sorts each rank by mode.
func Search(notes []domain.Note, query string, mode SortMode) []domain.Note {
	result := Filter(notes, query)
	q := normalizeQuery(query)
	if q == "" {
		return result
	}

	// collate.Collator is not safe for concurrent use
	col := collate.New(language.Und, collate.IgnoreCase)

	slices.SortStableFunc(result, func(a, b domain.Note) int {
		aName, bName := nameMatches(a, q), nameMatches(b, q)
		if aName != bName {
			if aName {
				return -1
			}
			return 1
		}

		switch mode {
		case SortByDate:
			return b.ID - a.ID
		case SortByContent:
			return contentLength(b) - contentLength(a)
		default:
			if c := col.CompareString(a.Name, b.Name); c != 0 {
				return c
			}
			return a.ID - b.ID
		}
	})
	return result
}

// contentLength measures the payload in UTF-16 code units, the unit the
// editor reports lengths in
func contentLength(n domain.Note) int {
	size := 0
	for _, r := range n.Content {
		size += max(utf16.RuneLen(r), 1)
	}
	return size
}
