package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"noted/internal/application/commands"
)

var colorCmd = &cobra.Command{
	Use:   "color <folder-id> <#RRGGBB>",
	Short: "Change a folder's color",
	Long: `Change a folder's color. Notes in the folder without their own icon
are drawn in this color.

Examples:
  noted-cli color folder-2 "#10B981"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		colorCmd := commands.NewSetColorCommand(GetNotebook(), args[0], args[1])
		result, err := colorCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <folder-id>",
	Short: "Expand or collapse a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		toggleCmd := commands.NewToggleFolderCommand(GetNotebook(), args[0])
		result, err := toggleCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(toggleCmd)
}
