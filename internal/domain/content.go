package domain

import (
	"encoding/json"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ContentKind tells how a note payload could be interpreted
type ContentKind int

const (
	ContentRaw ContentKind = iota
	ContentStructured
)

func (k ContentKind) String() string {
	if k == ContentStructured {
		return "structured"
	}
	return "raw"
}

// Block is one editor block of a structured document
type Block struct {
	ID       string          `json:"id,omitempty"`
	Type     string          `json:"type"`
	Props    map[string]any  `json:"props,omitempty"`
	Content  json.RawMessage `json:"content,omitempty"`
	Children []Block         `json:"children,omitempty"`
}

// Inline is a run of inline content inside a block
type Inline struct {
	Type    string   `json:"type"`
	Text    string   `json:"text,omitempty"`
	Href    string   `json:"href,omitempty"`
	Content []Inline `json:"content,omitempty"`
}

// Content is a read-only view of an opaque note payload: either a structured
// block document or raw text.
type Content struct {
	kind ContentKind
	doc  []Block
	raw  string
}

var stripPolicy = bluemonday.StrictPolicy()

// ParseContent interprets a payload. A JSON array of typed blocks is
// Structured; anything else is Raw with markup removed.
func ParseContent(payload string) Content {
	trimmed := strings.TrimSpace(payload)
	if strings.HasPrefix(trimmed, "[") {
		var doc []Block
		if err := json.Unmarshal([]byte(trimmed), &doc); err == nil && validBlocks(doc) {
			return Content{kind: ContentStructured, doc: doc}
		}
	}
	return Content{kind: ContentRaw, raw: StripMarkup(payload)}
}

func validBlocks(doc []Block) bool {
	for _, b := range doc {
		if b.Type == "" || !validBlocks(b.Children) {
			return false
		}
	}
	return true
}

// StripMarkup removes HTML tags and decodes entities
func StripMarkup(s string) string {
	return html.UnescapeString(stripPolicy.Sanitize(s))
}

// Kind returns how the payload was interpreted
func (c Content) Kind() ContentKind {
	return c.kind
}

// Structured returns the block document when the payload is structured
func (c Content) Structured() ([]Block, bool) {
	return c.doc, c.kind == ContentStructured
}

// Raw returns the stripped text when the payload is not structured
func (c Content) Raw() (string, bool) {
	return c.raw, c.kind == ContentRaw
}

// PlainText flattens the payload to text, one line per block
func (c Content) PlainText() string {
	if c.kind == ContentRaw {
		return c.raw
	}
	var lines []string
	appendBlockText(&lines, c.doc)
	return strings.Join(lines, "\n")
}

func appendBlockText(lines *[]string, blocks []Block) {
	for _, b := range blocks {
		if text := b.Text(); text != "" {
			*lines = append(*lines, text)
		}
		appendBlockText(lines, b.Children)
	}
}

// Text returns the concatenated inline text of the block. Blocks whose
// content is not an inline array (tables) contribute nothing.
func (b Block) Text() string {
	if len(b.Content) == 0 {
		return ""
	}
	var inline []Inline
	if err := json.Unmarshal(b.Content, &inline); err != nil {
		return ""
	}
	var sb strings.Builder
	writeInline(&sb, inline)
	return sb.String()
}

func writeInline(sb *strings.Builder, inline []Inline) {
	for _, in := range inline {
		sb.WriteString(in.Text)
		writeInline(sb, in.Content)
	}
}

// PropString returns a string prop, or "" when absent
func (b Block) PropString(key string) string {
	if v, ok := b.Props[key].(string); ok {
		return v
	}
	return ""
}

// PropInt returns a numeric prop, or def when absent
func (b Block) PropInt(key string, def int) int {
	switch v := b.Props[key].(type) {
	case float64:
		return int(v)
	case string:
		n := 0
		for _, r := range v {
			if r < '0' || r > '9' {
				return def
			}
			n = n*10 + int(r-'0')
		}
		if v != "" {
			return n
		}
	}
	return def
}

// PropBool returns a boolean prop
func (b Block) PropBool(key string) bool {
	v, _ := b.Props[key].(bool)
	return v
}

// ParagraphDocument builds a structured payload with one paragraph block per
// line of text
func ParagraphDocument(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	doc := make([]Block, 0, len(lines))
	for _, line := range lines {
		b := Block{Type: "paragraph"}
		if line != "" {
			b.Content, _ = json.Marshal([]Inline{{Type: "text", Text: line}})
		}
		doc = append(doc, b)
	}
	data, _ := json.Marshal(doc)
	return string(data)
}
