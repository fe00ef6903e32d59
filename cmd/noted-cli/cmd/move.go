package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"noted/internal/application/commands"
)

var moveCmd = &cobra.Command{
	Use:   "move <note-id> <folder-id|root>",
	Short: "Move a note to a folder",
	Long: `Move a note to the end of a folder, or of the root group.

Examples:
  noted-cli move 3 folder-2    # Move note 3 into folder 2
  noted-cli move 3 root        # Take note 3 out of its folder`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		moveCmd := commands.NewMoveNoteCommand(GetNotebook(), args[0], args[1])
		result, err := moveCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var dragCmd = &cobra.Command{
	Use:   "drag <source-id> <target-id>",
	Short: "Drop one sidebar item onto another",
	Long: `Drop one sidebar item onto another, as dragging in the sidebar does.

Rules:
- A folder dropped on a folder takes its position
- A note dropped on a note of the same group takes its position
- A note dropped on a note of another group joins the end of that group
- A note dropped on a folder joins the end of the folder

Examples:
  noted-cli drag folder-3 folder-1    # Put folder 3 where folder 1 is
  noted-cli drag 5 2                  # Put note 5 where note 2 is
  noted-cli drag 5 folder-1           # Move note 5 into folder 1`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		dragCmd := commands.NewDragCommand(GetNotebook(), args[0], args[1])
		result, err := dragCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(dragCmd)
}
