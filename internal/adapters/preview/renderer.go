package preview

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"noted/internal/domain"
)

// DefaultStyle avoids glamour's auto style, which queries the terminal
const DefaultStyle = "dark"

// Renderer renders note content for the terminal, caching one glamour
// renderer per wrap width
type Renderer struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

// NewRenderer creates a Renderer for a glamour standard style
func NewRenderer(style string) *Renderer {
	if style == "" {
		style = DefaultStyle
	}
	return &Renderer{style: style, renderers: map[int]*glamour.TermRenderer{}}
}

// Render renders content wrapped to width. On renderer errors the markdown
// source is returned unchanged.
func (r *Renderer) Render(c domain.Content, width int) string {
	md := strings.TrimSpace(Markdown(c))
	if md == "" {
		return ""
	}
	width = max(width, 10)

	tr, err := r.renderer(width)
	if err != nil {
		return md
	}
	out, err := tr.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func (r *Renderer) renderer(width int) (*glamour.TermRenderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tr, ok := r.renderers[width]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.renderers[width] = tr
	return tr, nil
}

