package preview

import (
	"fmt"
	"strings"

	"noted/internal/domain"
)

// Markdown converts note content to markdown. Raw content is returned as
// plain text; structured blocks map to the closest markdown construct.
func Markdown(c domain.Content) string {
	blocks, ok := c.Structured()
	if !ok {
		return c.PlainText()
	}
	var sb strings.Builder
	writeBlocks(&sb, blocks, 0)
	return strings.TrimRight(sb.String(), "\n")
}

func writeBlocks(sb *strings.Builder, blocks []domain.Block, depth int) {
	indent := strings.Repeat("  ", depth)
	number := 0
	for _, b := range blocks {
		if b.Type == "numberedListItem" {
			number++
		} else {
			number = 0
		}

		text := b.Text()
		switch b.Type {
		case "heading":
			level := min(max(b.PropInt("level", 1), 1), 6)
			fmt.Fprintf(sb, "%s %s\n\n", strings.Repeat("#", level), text)
		case "bulletListItem":
			fmt.Fprintf(sb, "%s- %s\n", indent, text)
		case "numberedListItem":
			fmt.Fprintf(sb, "%s%d. %s\n", indent, number, text)
		case "checkListItem":
			mark := " "
			if b.PropBool("checked") {
				mark = "x"
			}
			fmt.Fprintf(sb, "%s- [%s] %s\n", indent, mark, text)
		case "codeBlock":
			fmt.Fprintf(sb, "```%s\n%s\n```\n\n", b.PropString("language"), text)
		case "quote":
			fmt.Fprintf(sb, "> %s\n\n", text)
		case "image":
			fmt.Fprintf(sb, "![%s](%s)\n\n", b.PropString("caption"), b.PropString("url"))
		default:
			if text != "" {
				fmt.Fprintf(sb, "%s%s\n\n", indent, text)
			}
		}

		if len(b.Children) > 0 {
			writeBlocks(sb, b.Children, depth+1)
		}
	}
}
