package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"noted/internal/application/commands"
)

var addFolder string

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note or a folder",
}

var addNoteCmd = &cobra.Command{
	Use:   "note [name]",
	Short: "Create a note",
	Long: `Create a note at the end of a folder, or of the root group.

Without a name the note gets a generated one ("Note 4").

Examples:
  noted-cli add note
  noted-cli add note "Groceries"
  noted-cli add note --folder folder-2 "Standup"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		createCmd := commands.NewCreateNoteCommand(GetNotebook(), addFolder, strings.Join(args, " "))
		result, err := createCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var addFolderCmd = &cobra.Command{
	Use:   "folder [name]",
	Short: "Create a folder",
	Long: `Create a folder at the end of the folder list. Its color is taken from
the palette in turn.

Examples:
  noted-cli add folder
  noted-cli add folder "Work"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		createCmd := commands.NewCreateFolderCommand(GetNotebook(), strings.Join(args, " "))
		result, err := createCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	addNoteCmd.Flags().StringVarP(&addFolder, "folder", "f", "", "destination folder (default root)")
	rootCmd.AddCommand(addCmd)
	addCmd.AddCommand(addNoteCmd)
	addCmd.AddCommand(addFolderCmd)
}
