package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samverdant/vfm/internal/editor"
	"github.com/samverdant/vfm/internal/note"
	"github.com/samverdant/vfm/internal/space"
)

var newTitleFlag string

var newCmd = &cobra.Command{
	Use:   "new [space-or-path]",
	Short: "Create a new note from the configured template",
	Long: `Creates a note inside a space, or a subdirectory of one. Without an
argument the first configured space is used.

The filename is derived from the title: lower-cased, with whitespace
and path-unsafe characters collapsed to dashes, and a numeric suffix
(-2, -3, ...) when the name is already taken. An existing note is
never overwritten.

Examples:
  vfm new vfm.private --title "Meeting notes"
  vfm new vfm.public/essays --title "On walking"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := cfg.Spaces[0]
		if len(args) == 1 {
			target = args[0]
		}

		title := strings.TrimSpace(newTitleFlag)
		if title == "" && !isJSONOutput() {
			fmt.Printf("Title: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			title = strings.TrimSpace(line)
		}

		dir, err := space.Resolve(cfg, target)
		if err != nil {
			return handleError(errorCode(err), err, hintSpaces())
		}

		path, err := note.Create(cfg, dir, title)
		if err != nil {
			if errors.Is(err, note.ErrTitleEmpty) {
				return handleError(ErrTitleEmpty, err, "Pass --title with a non-empty value")
			}
			return handleError(ErrWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"file":  path,
				"title": title,
			}, nil)
			return nil
		}

		fmt.Printf("Created: %s\n", path)
		editor.OpenOrPrintPath(cfg, path)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newTitleFlag, "title", "", "Title for the new note (prompted when omitted)")
	rootCmd.AddCommand(newCmd)
}
