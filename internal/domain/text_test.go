package domain

import "testing"

func TestIndexFold(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		query     string
		wantStart int
		wantEnd   int
	}{
		{name: "ascii", text: "Buy Milk", query: "milk", wantStart: 4, wantEnd: 8},
		{name: "no match", text: "Buy Milk", query: "eggs", wantStart: -1, wantEnd: -1},
		{name: "empty query", text: "Buy Milk", query: "", wantStart: -1, wantEnd: -1},
		{name: "runes that grow when lowered", text: "ȺȺȺȺȺȺ abc", query: "abc", wantStart: 13, wantEnd: 16},
		{name: "folded non-ascii match", text: "xx ȺBC", query: "ⱥbc", wantStart: 3, wantEnd: 7},
		{name: "multibyte prefix", text: "日本語 Note", query: "NOTE", wantStart: 10, wantEnd: 14},
		{name: "query longer than text", text: "ab", query: "abc", wantStart: -1, wantEnd: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := IndexFold(tt.text, tt.query)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("IndexFold(%q, %q) = %d, %d, want %d, %d", tt.text, tt.query, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
