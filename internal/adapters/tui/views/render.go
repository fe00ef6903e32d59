package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	xansi "github.com/charmbracelet/x/ansi"

	"noted/internal/adapters/tui/styles"
	"noted/internal/domain"
)

// folderGlyph is drawn before folder names; notes with the default icon
// get a page glyph in their folder's color
const (
	folderGlyph = "■"
	noteGlyph   = "▤"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderNoteIcon renders a note's icon. The default icon becomes a glyph in
// the color inherited from its folder.
func RenderNoteIcon(icon, color string) string {
	if icon == "" || strings.HasPrefix(icon, domain.DefaultNoteIcon) {
		return styles.ColorStyle(color).Render(noteGlyph)
	}
	return icon
}

// RenderFolderIcon renders the colored folder marker
func RenderFolderIcon(color string) string {
	return styles.ColorStyle(color).Render(folderGlyph)
}

// Truncate shortens s to width cells, marking the cut with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 || xansi.StringWidth(s) <= width {
		return s
	}
	return xansi.Truncate(s, width, "…")
}

// HighlightMatch marks the first case-insensitive occurrence of query
func HighlightMatch(text, query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return text
	}
	start, end := domain.IndexFold(text, query)
	if start < 0 {
		return text
	}
	return text[:start] + styles.SearchMatch.Render(text[start:end]) + text[end:]
}

// ViewBuilder helps construct view output with consistent formatting
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds a title section
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	v.b.WriteString(styles.Title.Render(title))
	v.b.WriteString("\n\n")
	return v
}

// Subtitle adds a subtitle section
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	v.b.WriteString(styles.Subtitle.Render(subtitle))
	v.b.WriteString("\n\n")
	return v
}

// Line adds a line of text
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteString("\n")
	return v
}

// BlankLine adds a blank line
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteString("\n")
	return v
}

// Muted adds muted text followed by a newline
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	v.b.WriteString(styles.MutedText.Render(text))
	v.b.WriteString("\n")
	return v
}

// Message adds a message if non-empty, with appropriate error/success styling
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	v.b.WriteString(RenderMessage(message, isError))
	v.b.WriteString("\n\n")
	return v
}

// Help adds a help line with key bindings
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	v.b.WriteString(RenderHelpLine(bindings...))
	return v
}

// Raw adds raw text without any formatting
func (v *ViewBuilder) Raw(text string) *ViewBuilder {
	v.b.WriteString(text)
	return v
}

// String returns the built view string
func (v *ViewBuilder) String() string {
	return v.b.String()
}
