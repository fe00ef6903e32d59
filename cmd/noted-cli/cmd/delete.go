package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"noted/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note or a folder",
	Long: `Delete a note or a folder.

Deleting a folder keeps its notes: they move to the root group. Deleting
the last note replaces it with a fresh empty one.

Examples:
  noted-cli delete 3           # Delete note 3
  noted-cli delete folder-2    # Delete folder 2, keeping its notes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		deleteCmd := commands.NewDeleteCommand(GetNotebook(), args[0])
		result, err := deleteCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
