package commands

import (
	"context"
	"strings"
	"unicode/utf8"

	"noted/internal/application"
	"noted/internal/domain"
	"noted/internal/ports"
)

// snippetRadius is the number of runes kept on each side of a match
const snippetRadius = 30

// SearchResult is a matching note with a snippet of where it matched
type SearchResult struct {
	Note      domain.Note
	NameMatch bool
	Snippet   string
}

// SearchCommand searches note names and contents
type SearchCommand struct {
	nb    ports.Notebook
	Query string
	Sort  string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(nb ports.Notebook, query, sort string) *SearchCommand {
	return &SearchCommand{
		nb:    nb,
		Query: query,
		Sort:  sort,
	}
}

// Validate checks the query and sort mode
func (c *SearchCommand) Validate() error {
	if err := application.ValidateRequired("query", c.Query); err != nil {
		return err
	}
	_, err := application.ParseSortMode(c.Sort)
	return err
}

// Execute runs the search command and returns ranked results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	mode, _ := application.ParseSortMode(c.Sort)
	notes := application.Search(c.nb.Notes(), c.Query, mode)

	q := strings.ToLower(strings.TrimSpace(c.Query))
	results := make([]SearchResult, 0, len(notes))
	for _, n := range notes {
		results = append(results, SearchResult{
			Note:      n,
			NameMatch: strings.Contains(strings.ToLower(n.Name), q),
			Snippet:   Snippet(domain.ParseContent(n.Content).PlainText(), q),
		})
	}
	return results, nil
}

// Snippet returns the text around the first case-insensitive occurrence of
// query, on one line. Without a match it returns the start of the text.
func Snippet(text, query string) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)

	start := 0
	if query != "" {
		if idx, _ := domain.IndexFold(text, query); idx >= 0 {
			start = utf8.RuneCountInString(text[:idx]) - snippetRadius
		}
	}
	start = max(start, 0)
	end := min(start+2*snippetRadius+utf8.RuneCountInString(query), len(runes))

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = "…" + snippet
	}
	if end < len(runes) {
		snippet += "…"
	}
	return snippet
}
