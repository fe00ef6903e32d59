package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"noted/internal/adapters/sqlite"
	"noted/internal/application"
	"noted/internal/config"
	"noted/internal/logging"
	"noted/internal/ports"
)

var (
	dataDir  string
	logLevel string
	cfg      config.Config
	store    *application.Store
)

var rootCmd = &cobra.Command{
	Use:   "noted-cli",
	Short: "CLI for managing noted notes and folders",
	Long: `noted-cli is a command-line interface to the notes and folders
kept by noted.

It reads and writes the same database as the TUI: list, create, rename,
move, reorder, delete and search notes without leaving the shell.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return openStore(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	closeStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	cfg = loaded

	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", cfg.DataDir, "directory holding notes.db")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

func openStore(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	gateway, err := sqlite.Open(ctx, config.ExpandHome(dataDir))
	if err != nil {
		return err
	}

	logger := logging.ToStderr(logLevel)
	store = application.NewStore(gateway, application.WithLogger(logger.Logger))
	return store.Load(ctx)
}

// closeStore flushes pending writes before the process exits
func closeStore() {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	store = nil
}

// GetNotebook returns the loaded store
func GetNotebook() ports.Notebook {
	return store
}
