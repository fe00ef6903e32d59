package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"noted/internal/application/commands"
	"noted/internal/domain"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list [folder-id]",
	Short: "List notes",
	Long: `List the notes of a folder, or of the root group when no folder is given,
in display order.

Examples:
  noted-cli list              # Notes outside any folder
  noted-cli list folder-2     # Notes in folder 2
  noted-cli list --all        # Every note in creation order`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder := ""
		if len(args) == 1 {
			folder = args[0]
		}
		ctx := context.Background()

		listCmd := commands.NewListNotesCommand(GetNotebook(), folder, listAll)
		result, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(result.Notes) == 0 {
			fmt.Fprintln(out, "No notes")
			return nil
		}
		for _, n := range result.Notes {
			fmt.Fprintf(out, "%d %s\n", n.ID, n.Name)
		}
		return nil
	},
}

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		folders, err := commands.NewListFoldersCommand(GetNotebook()).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, f := range folders {
			marker := "▾"
			if !f.IsExpanded {
				marker = "▸"
			}
			fmt.Fprintf(out, "%s %s %s %s\n", domain.FolderItemRef(f.ID), marker, f.Name, f.Color)
		}
		return nil
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show folders and notes as the sidebar does",
	Long: `Show folders in order with their notes, then the notes outside any
folder. Collapsed folders are shown without their notes unless --all is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := commands.NewTreeCommand(GetNotebook()).Execute(context.Background())
		if err != nil {
			return err
		}
		printTree(cmd.OutOrStdout(), root, "")
		return nil
	},
}

var treeAll bool

func printTree(out io.Writer, node *domain.TreeNode, prefix string) {
	for i, child := range node.Children {
		last := i == len(node.Children)-1
		branch, next := "├── ", "│   "
		if last {
			branch, next = "└── ", "    "
		}

		label := fmt.Sprintf("%s %s", child.Ref(), child.Name)
		if child.Kind == domain.KindFolder && !child.IsExpanded {
			label += " (collapsed)"
		}
		fmt.Fprintln(out, prefix+branch+label)

		if child.Kind == domain.KindFolder && (child.IsExpanded || treeAll) {
			printTree(out, child, prefix+next)
		}
	}
}

// indent prefixes every line of s
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "list every note")
	treeCmd.Flags().BoolVarP(&treeAll, "all", "a", false, "show notes of collapsed folders")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(foldersCmd)
	rootCmd.AddCommand(treeCmd)
}
