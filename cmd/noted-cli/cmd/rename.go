package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"noted/internal/application/commands"
)

var renameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Rename a note or a folder",
	Long: `Rename a note or a folder. Blank names are rejected.

Examples:
  noted-cli rename 3 "Meeting notes"
  noted-cli rename folder-2 Archive`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		renameCmd := commands.NewRenameCommand(GetNotebook(), args[0], strings.Join(args[1:], " "))
		result, err := renameCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
