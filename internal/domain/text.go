package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// IndexFold returns the byte span in text of the first case-insensitive
// occurrence of query, or -1, -1 when there is none. Offsets index text
// itself, never a lowered copy.
func IndexFold(text, query string) (int, int) {
	if query == "" {
		return -1, -1
	}
	// search.Matcher is not safe for concurrent use
	return search.New(language.Und, search.IgnoreCase).IndexString(text, query)
}
