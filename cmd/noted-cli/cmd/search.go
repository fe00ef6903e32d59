package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"noted/internal/application/commands"
)

var searchSort string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search notes",
	Long: `Search note names and contents, case-insensitively.

Name matches are listed first, then content matches, each ordered by
--sort: name (alphabetical), date (newest first) or content (longest first).

Examples:
  noted-cli search milk
  noted-cli search --sort date "standup"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		ctx := context.Background()

		searchCmd := commands.NewSearchCommand(GetNotebook(), query, searchSort)
		results, err := searchCmd.Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No results found")
			return nil
		}

		for _, r := range results {
			where := "content"
			if r.NameMatch {
				where = "name"
			}
			fmt.Fprintf(out, "[%s] %d %s\n", where, r.Note.ID, r.Note.Name)
			if r.Snippet != "" {
				fmt.Fprintln(out, indent(r.Snippet, "    "))
			}
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchSort, "sort", "s", "name", "secondary order: name, date or content")
	rootCmd.AddCommand(searchCmd)
}
