package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samverdant/vfm/internal/editor"
	"github.com/samverdant/vfm/internal/space"
)

var openCmd = &cobra.Command{
	Use:   "open <space-or-path>",
	Short: "Open a note in your editor",
	Long: `Resolves a note path under a space and launches the configured editor.

The editor is determined by (in order):
  1. The 'editor' setting in the vfm config
  2. The $EDITOR environment variable

Examples:
  vfm open vfm.private/meeting-notes.md
  vfm open vfm.space/walden-2.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := space.Resolve(cfg, args[0])
		if err != nil {
			return handleError(errorCode(err), err, hintSpaces())
		}

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return handleErrorMsg(ErrFileNotFound, fmt.Sprintf("note not found: %s", path), "")
		}

		if isJSONOutput() {
			opened := editor.Open(cfg, path)
			outputSuccess(map[string]interface{}{
				"file":   path,
				"opened": opened,
				"editor": cfg.GetEditor(),
			}, nil)
			return nil
		}

		editor.OpenOrPrintPath(cfg, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
