package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"noted/internal/adapters/preview"
	"noted/internal/application/commands"
	"noted/internal/domain"
	"noted/internal/ports"
)

// RegisterReadTools adds all read-only notebook tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, nb ports.Notebook) {
	s.AddTool(listNotesTool(), listNotesHandler(nb))
	s.AddTool(listFoldersTool(), listFoldersHandler(nb))
	s.AddTool(treeTool(), treeHandler(nb))
	s.AddTool(readNoteTool(), readNoteHandler(nb))
	s.AddTool(searchTool(), searchHandler(nb))
}

// --- list_notes ---

func listNotesTool() mcp.Tool {
	return mcp.NewTool("list_notes",
		mcp.WithDescription("List the notes of one folder, or of the root group, in display order."),
		mcp.WithString("folder_id",
			mcp.Description("Folder to list (e.g. folder-2 or 2). Omit or use \"root\" for notes outside any folder."),
		),
		mcp.WithBoolean("all",
			mcp.Description("List every note in creation order, ignoring folder_id"),
		),
	)
}

func listNotesHandler(nb ports.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListNotesCommand(nb, req.GetString("folder_id", ""), req.GetBool("all", false))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(result.Notes, formatNote)
	}
}

// --- list_folders ---

func listFoldersTool() mcp.Tool {
	return mcp.NewTool("list_folders",
		mcp.WithDescription("List all folders in display order."),
	)
}

func listFoldersHandler(nb ports.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		folders, err := commands.NewListFoldersCommand(nb).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(folders, formatFolder)
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display folders and notes as the sidebar shows them."),
	)
}

func treeHandler(nb ports.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, err := commands.NewTreeCommand(nb).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		var sb strings.Builder
		renderTree(&sb, root, "")
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, node *domain.TreeNode, prefix string) {
	if node.Kind != domain.KindUnknown {
		fmt.Fprintf(sb, "%s%s  %s\n", prefix, node.Ref(), node.Name)
		prefix += "  "
	}
	for _, child := range node.Children {
		renderTree(sb, child, prefix)
	}
}

// --- read_note ---

func readNoteTool() mcp.Tool {
	return mcp.NewTool("read_note",
		mcp.WithDescription("Read a note. Structured content is returned as markdown unless raw is set."),
		mcp.WithString("id",
			mcp.Description("Note ID (e.g. 3)"),
			mcp.Required(),
		),
		mcp.WithBoolean("raw",
			mcp.Description("Return the stored payload unchanged"),
		),
	)
}

func readNoteHandler(nb ports.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		result, err := commands.NewShowNoteCommand(nb, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if req.GetBool("raw", false) {
			return mcp.NewToolResultText(result.Note.Content), nil
		}

		location := "root"
		if result.Folder != nil {
			location = fmt.Sprintf("%s (%s)", result.Folder.Name, domain.FolderItemRef(result.Folder.ID))
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "# %s\n\n", result.Note.Name)
		fmt.Fprintf(&sb, "id: %d, in: %s, content: %s\n\n", result.Note.ID, location, result.Content.Kind())
		sb.WriteString(preview.Markdown(result.Content))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search note names and contents. Name matches rank first."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
		mcp.WithString("sort",
			mcp.Description("Secondary order: name, date or content"),
			mcp.Enum("name", "date", "content"),
		),
	)
}

func searchHandler(nb ports.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(nb, query, req.GetString("sort", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%d  %s  %s\n", r.Note.ID, r.Note.Name, r.Snippet)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatNote(n domain.Note) string {
	return fmt.Sprintf("%d  %s  (%s)", n.ID, n.Name, domain.FormatFolderID(n.FolderID))
}

func formatFolder(f domain.Folder) string {
	state := "expanded"
	if !f.IsExpanded {
		state = "collapsed"
	}
	return fmt.Sprintf("%s  %s  %s  %s", domain.FolderItemRef(f.ID), f.Name, f.Color, state)
}
