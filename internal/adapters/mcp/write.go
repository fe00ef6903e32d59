package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"noted/internal/application/commands"
	"noted/internal/ports"
)

// RegisterWriteTools adds all mutating notebook tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, nb ports.Notebook) {
	s.AddTool(createNoteTool(), createNoteHandler(nb))
	s.AddTool(createFolderTool(), createFolderHandler(nb))
	s.AddTool(renameTool(), renameHandler(nb))
	s.AddTool(deleteTool(), deleteHandler(nb))
	s.AddTool(moveNoteTool(), moveNoteHandler(nb))
	s.AddTool(dragTool(), dragHandler(nb))
	s.AddTool(updateContentTool(), updateContentHandler(nb))
	s.AddTool(setColorTool(), setColorHandler(nb))
	s.AddTool(toggleFolderTool(), toggleFolderHandler(nb))
	s.AddTool(setIconTool(), setIconHandler(nb))
}

// --- create_note ---

func createNoteTool() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription("Create a note at the end of a folder or of the root group."),
		mcp.WithString("folder_id",
			mcp.Description("Destination folder (e.g. folder-2). Omit for the root group."),
		),
		mcp.WithString("name",
			mcp.Description("Note name. Omit to keep the generated name."),
		),
	)
}

func createNoteHandler(nb ports.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateNoteCommand(nb, req.GetString("folder_id", ""), req.GetString("name", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- create_folder ---

func createFolderTool() mcp.Tool {
	return mcp.NewTool("create_folder",
		mcp.WithDescription("Create a folder at the end of the folder list."),
		mcp.WithString("name",
			mcp.Description("Folder name. Omit to keep the generated name."),
		),
	)
}

func createFolderHandler(nb ports.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewCreateFolderCommand(nb, req.GetString("name", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- rename ---

func renameTool() mcp.Tool {
	return mcp.NewTool("rename",
		mcp.WithDescription("Rename a note or a folder. Blank names are rejected."),
		mcp.WithString("id",
			mcp.Description("Note ID (e.g. 3) or folder ID (e.g. folder-2)"),
			mcp.Required(),
		),
		mcp.WithString("new_name",
			mcp.Description("New name"),
			mcp.Required(),
		),
	)
}

func renameHandler(nb ports.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRenameCommand(nb, req.GetString("id", ""), req.GetString("new_name", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a note or a folder. A folder's notes move to the root group. Deleting the last note replaces it with a fresh one."),
		mcp.WithString("id",
			mcp.Description("Note ID (e.g. 3) or folder ID (e.g. folder-2)"),
			mcp.Required(),
		),
	)
}

func deleteHandler(nb ports.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteCommand(nb, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move_note ---

func moveNoteTool() mcp.Tool {
	return mcp.NewTool("move_note",
		mcp.WithDescription("Move a note to the end of a folder or of the root group."),
		mcp.WithString("note_id",
			mcp.Description("Note ID to move"),
			mcp.Required(),
		),
		mcp.WithString("folder_id",
			mcp.Description("Destination folder (e.g. folder-2), or \"root\""),
			mcp.Required(),
		),
	)
}

func moveNoteHandler(nb ports.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewMoveNoteCommand(nb, req.GetString("note_id", ""), req.GetString("folder_id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- drag ---

func dragTool() mcp.Tool {
	return mcp.NewTool("drag",
		mcp.WithDescription("Drop one sidebar item onto another. A folder dropped on a folder takes its position. A note dropped on a note in the same group takes its position, otherwise it joins that note's group. A note dropped on a folder joins the folder."),
		mcp.WithString("source_id",
			mcp.Description("Dragged item: note ID (e.g. 3) or folder ID (e.g. folder-2)"),
			mcp.Required(),
		),
		mcp.WithString("target_id",
			mcp.Description("Item dropped onto"),
			mcp.Required(),
		),
	)
}

func dragHandler(nb ports.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDragCommand(nb, req.GetString("source_id", ""), req.GetString("target_id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- update_content ---

func updateContentTool() mcp.Tool {
	return mcp.NewTool("update_content",
		mcp.WithDescription("Replace a note's content. The payload is stored as given: a JSON block document or plain text."),
		mcp.WithString("note_id",
			mcp.Description("Note ID"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("New content payload"),
			mcp.Required(),
		),
	)
}

func updateContentHandler(nb ports.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewUpdateContentCommand(nb, req.GetString("note_id", ""), req.GetString("content", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- set_color ---

func setColorTool() mcp.Tool {
	return mcp.NewTool("set_color",
		mcp.WithDescription("Change a folder's color. Notes without their own icon take this color."),
		mcp.WithString("folder_id",
			mcp.Description("Folder ID (e.g. folder-2)"),
			mcp.Required(),
		),
		mcp.WithString("color",
			mcp.Description("Hex color such as #3B82F6"),
			mcp.Required(),
		),
	)
}

func setColorHandler(nb ports.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSetColorCommand(nb, req.GetString("folder_id", ""), req.GetString("color", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- toggle_folder ---

func toggleFolderTool() mcp.Tool {
	return mcp.NewTool("toggle_folder",
		mcp.WithDescription("Expand or collapse a folder in the sidebar."),
		mcp.WithString("folder_id",
			mcp.Description("Folder ID (e.g. folder-2)"),
			mcp.Required(),
		),
	)
}

func toggleFolderHandler(nb ports.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewToggleFolderCommand(nb, req.GetString("folder_id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- set_icon ---

func setIconTool() mcp.Tool {
	return mcp.NewTool("set_icon",
		mcp.WithDescription("Set a note's icon. An empty icon restores the default glyph."),
		mcp.WithString("note_id",
			mcp.Description("Note ID"),
			mcp.Required(),
		),
		mcp.WithString("icon",
			mcp.Description("Emoji or glyph"),
		),
	)
}

func setIconHandler(nb ports.Notebook) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		msg, err := commands.NewSetIconCommand(nb, req.GetString("note_id", ""), req.GetString("icon", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(msg), nil
	}
}
