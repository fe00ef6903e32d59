package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "noted/internal/adapters/mcp"
	"noted/internal/adapters/sqlite"
	"noted/internal/application"
	"noted/internal/config"
	"noted/internal/logging"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		logging.ToStderr("error").Fatal().Err(err).Msg("noted-mcp")
	}
}

func run(ctx context.Context, args []string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := flag.NewFlagSet("noted-mcp", flag.ContinueOnError)
	dataDir := flags.String("data-dir", cfg.DataDir, "directory holding notes.db")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// stdout carries the protocol
	logger := logging.ToStderr(cfg.LogLevel)

	gateway, err := sqlite.Open(ctx, config.ExpandHome(*dataDir))
	if err != nil {
		return err
	}
	store := application.NewStore(gateway, application.WithLogger(logger.Logger))
	defer store.Close()
	if err := store.Load(ctx); err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}
	logger.Info().Str("db", gateway.Path()).Msg("serving notes")

	mcpServer := server.NewMCPServer(
		"noted-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, store)

	return server.ServeStdio(mcpServer)
}
