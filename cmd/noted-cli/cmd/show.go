package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"noted/internal/adapters/editor"
	"noted/internal/adapters/preview"
	"noted/internal/application/commands"
	"noted/internal/domain"
)

var (
	showRaw    bool
	showRender bool
	writeFile  string
)

var showCmd = &cobra.Command{
	Use:   "show <note-id>",
	Short: "Print a note",
	Long: `Print a note's name, location and content.

Structured content is printed as markdown. Use --render for styled
terminal output, or --raw for the stored payload.

Examples:
  noted-cli show 3
  noted-cli show 3 --render
  noted-cli show 3 --raw > note.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		showCmd := commands.NewShowNoteCommand(GetNotebook(), args[0])
		result, err := showCmd.Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showRaw {
			fmt.Fprint(out, result.Note.Content)
			return nil
		}

		location := "root"
		if result.Folder != nil {
			location = fmt.Sprintf("%s (%s)", result.Folder.Name, domain.FolderItemRef(result.Folder.ID))
		}
		icon := result.Note.Icon
		if result.Note.UsesDefaultIcon() {
			icon = "▤"
		}
		fmt.Fprintf(out, "%s %s\n", icon, result.Note.Name)
		fmt.Fprintf(out, "in %s, %s content\n\n", location, result.Content.Kind())

		if showRender {
			fmt.Fprintln(out, preview.NewRenderer(preview.DefaultStyle).Render(result.Content, 80))
			return nil
		}
		fmt.Fprintln(out, preview.Markdown(result.Content))
		return nil
	},
}

var writeCmd = &cobra.Command{
	Use:   "write <note-id>",
	Short: "Replace a note's content",
	Long: `Replace a note's content with the contents of a file, or of stdin.

The payload is stored as given: a JSON block document stays structured,
anything else is kept as text.

Examples:
  noted-cli write 3 --file note.json
  echo "buy milk" | noted-cli write 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var (
			data []byte
			err  error
		)
		if writeFile != "" {
			data, err = os.ReadFile(writeFile)
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("failed to read content: %w", err)
		}

		updateCmd := commands.NewUpdateContentCommand(GetNotebook(), args[0], string(data))
		result, err := updateCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <note-id>",
	Short: "Edit a note's content in $EDITOR",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		showCmd := commands.NewShowNoteCommand(GetNotebook(), args[0])
		result, err := showCmd.Execute(ctx)
		if err != nil {
			return err
		}

		session, err := editor.NewSession(result.Note.ID, result.Note.Content)
		if err != nil {
			return err
		}
		defer session.Close()

		editorCmd, err := editor.NewOpener(cfg.Editor).Command(session.Path())
		if err != nil {
			return err
		}
		if err := editorCmd.Run(); err != nil {
			return fmt.Errorf("editor failed: %w", err)
		}

		payload, changed, err := session.Result()
		if err != nil {
			return err
		}
		if !changed {
			fmt.Fprintln(cmd.OutOrStdout(), "No changes")
			return nil
		}

		updateCmd := commands.NewUpdateContentCommand(GetNotebook(), args[0], payload)
		updated, err := updateCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), updated.Message)
		return nil
	},
}

var iconCmd = &cobra.Command{
	Use:   "icon <note-id> [icon]",
	Short: "Set or remove a note's icon",
	Long: `Set a note's icon to an emoji or glyph. Without an icon the default
glyph, colored like its folder, is restored.

Examples:
  noted-cli icon 3 ⭐
  noted-cli icon 3`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		icon := ""
		if len(args) == 2 {
			icon = args[1]
		}
		ctx := context.Background()

		msg, err := commands.NewSetIconCommand(GetNotebook(), args[0], icon).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami [name]",
	Short: "Show or change the name used on the home view",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		username, err := commands.NewUsernameCommand(GetNotebook(), strings.Join(args, " ")).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), username)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print the stored payload")
	showCmd.Flags().BoolVar(&showRender, "render", false, "render markdown for the terminal")
	writeCmd.Flags().StringVarP(&writeFile, "file", "f", "", "read content from file instead of stdin")
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(iconCmd)
	rootCmd.AddCommand(whoamiCmd)
}
