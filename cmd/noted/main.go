package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/adapters/editor"
	"noted/internal/adapters/memory"
	"noted/internal/adapters/preview"
	"noted/internal/adapters/sqlite"
	"noted/internal/adapters/tui"
	"noted/internal/adapters/tui/styles"
	"noted/internal/application"
	"noted/internal/config"
	"noted/internal/logging"
	"noted/internal/ports"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dataDir := flag.String("data-dir", cfg.DataDir, "directory holding notes.db and noted.log")
	ephemeral := flag.Bool("ephemeral", false, "keep notes in memory only")
	flag.Parse()
	cfg.DataDir = config.ExpandHome(*dataDir)

	// The TUI owns the terminal, so logs go to a file
	logger, err := logging.ToFile(cfg.DataDir, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer logger.Close()

	var gateway ports.Gateway = memory.New()
	if !*ephemeral {
		db, err := sqlite.Open(ctx, cfg.DataDir)
		if err != nil {
			return err
		}
		logger.Info().Str("db", db.Path()).Msg("opened notes database")
		gateway = db
	}

	store := application.NewStore(gateway, application.WithLogger(logger.Logger))
	defer store.Close()
	if err := store.Load(ctx); err != nil {
		return err
	}

	styles.ApplyColorProfile()
	app := tui.NewApp(store, editor.NewOpener(cfg.Editor), preview.NewRenderer(preview.DefaultStyle))
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
