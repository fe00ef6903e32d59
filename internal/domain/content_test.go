package domain

import "testing"

func TestParseContent(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantKind  ContentKind
		wantPlain string
	}{
		{
			name:      "structured blocks",
			payload:   `[{"id":"a","type":"heading","props":{"level":2},"content":[{"type":"text","text":"Title"}]},{"type":"paragraph","content":[{"type":"text","text":"Hello "},{"type":"link","href":"https://x","content":[{"type":"text","text":"world"}]}]}]`,
			wantKind:  ContentStructured,
			wantPlain: "Title\nHello world",
		},
		{
			name:      "nested children",
			payload:   `[{"type":"bulletListItem","content":[{"type":"text","text":"parent"}],"children":[{"type":"bulletListItem","content":[{"type":"text","text":"child"}]}]}]`,
			wantKind:  ContentStructured,
			wantPlain: "parent\nchild",
		},
		{
			name:      "html payload",
			payload:   "<p>Buy <b>milk</b> &amp; eggs</p>",
			wantKind:  ContentRaw,
			wantPlain: "Buy milk & eggs",
		},
		{
			name:      "plain text",
			payload:   "just words",
			wantKind:  ContentRaw,
			wantPlain: "just words",
		},
		{
			name:      "json array without block types",
			payload:   `[1,2,3]`,
			wantKind:  ContentRaw,
			wantPlain: "[1,2,3]",
		},
		{
			name:      "malformed json",
			payload:   `[{"type":`,
			wantKind:  ContentRaw,
			wantPlain: `[{"type":`,
		},
		{
			name:      "empty",
			payload:   "",
			wantKind:  ContentRaw,
			wantPlain: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ParseContent(tt.payload)
			if c.Kind() != tt.wantKind {
				t.Fatalf("expected %s, got %s", tt.wantKind, c.Kind())
			}
			if got := c.PlainText(); got != tt.wantPlain {
				t.Errorf("expected plain text %q, got %q", tt.wantPlain, got)
			}
		})
	}
}

func TestContentAccessors(t *testing.T) {
	c := ParseContent(`[{"type":"paragraph"}]`)
	if _, ok := c.Raw(); ok {
		t.Error("structured content should not expose raw text")
	}
	doc, ok := c.Structured()
	if !ok || len(doc) != 1 || doc[0].Type != "paragraph" {
		t.Errorf("expected one paragraph block, got %+v", doc)
	}

	r := ParseContent("hello")
	if _, ok := r.Structured(); ok {
		t.Error("raw content should not expose blocks")
	}
	if text, ok := r.Raw(); !ok || text != "hello" {
		t.Errorf("expected raw hello, got %q", text)
	}
}

func TestBlockProps(t *testing.T) {
	b := Block{Props: map[string]any{"level": float64(3), "checked": true, "textColor": "red", "start": "4"}}

	if got := b.PropInt("level", 1); got != 3 {
		t.Errorf("expected level 3, got %d", got)
	}
	if got := b.PropInt("start", 1); got != 4 {
		t.Errorf("expected start 4, got %d", got)
	}
	if got := b.PropInt("missing", 1); got != 1 {
		t.Errorf("expected default 1, got %d", got)
	}
	if !b.PropBool("checked") {
		t.Error("expected checked")
	}
	if got := b.PropString("textColor"); got != "red" {
		t.Errorf("expected red, got %s", got)
	}
}

func TestParagraphDocument(t *testing.T) {
	c := ParseContent(ParagraphDocument("first\n\nsecond"))

	blocks, ok := c.Structured()
	if !ok {
		t.Fatal("expected structured content")
	}
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	if got := c.PlainText(); got != "first\nsecond" {
		t.Errorf("expected empty lines dropped from plain text, got %q", got)
	}
}
