package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samverdant/vfm/internal/corpus"
	"github.com/samverdant/vfm/internal/search"
	"github.com/samverdant/vfm/internal/ui"
)

var searchIgnoreCase bool

var searchCmd = &cobra.Command{
	Use:   "search [target] <pattern>",
	Short: "Search note contents with a regular expression",
	Long: `Scans note files line by line and prints every matching line as
path:line:text, in walk order. Matching is case-sensitive unless -i
is given.

TARGET is a space name or a path under a space; when omitted (or
"all") the whole corpus is searched. Zero matches is not an error.

Examples:
  vfm search TODO
  vfm search vfm.private 'deadline|due'
  vfm search -i vfm.public/essays walden`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, pattern := "", args[0]
		if len(args) == 2 {
			target, pattern = args[0], args[1]
		}

		scope, err := resolveTargetOrAll(target)
		if err != nil {
			return handleError(errorCode(err), err, hintSpaces())
		}

		// Compile before any file is read.
		engine, err := search.New(pattern, searchIgnoreCase, warnScan)
		if err != nil {
			return handleError(ErrInvalidPattern, err, "")
		}

		var matches []search.Match
		err = corpus.Scan(cfg, scope, func(rec corpus.Record) error {
			return engine.Observe(rec, func(m search.Match) error {
				matches = append(matches, m)
				return nil
			})
		})
		if err != nil {
			return handleError(ErrScanError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"pattern": pattern,
				"matches": matches,
			}, &Meta{Count: len(matches)})
			return nil
		}

		if len(matches) == 0 {
			fmt.Printf("No matches for: %s\n", pattern)
			return nil
		}

		styled := ui.Colorized()
		width := ui.TermWidth()
		for _, m := range matches {
			if styled {
				text := ui.Truncate(m.Text, availableWidth(width, m.Path))
				fmt.Printf("%s:%s:%s\n", ui.FilePath(m.Path), ui.LineNum(m.Line), text)
			} else {
				fmt.Printf("%s:%d:%s\n", m.Path, m.Line, m.Text)
			}
		}
		return nil
	},
}

// availableWidth leaves room for the path:line: prefix when truncating
// matched lines for terminal display.
func availableWidth(termWidth int, path string) int {
	avail := termWidth - len(path) - 8
	if avail < 20 {
		avail = 20
	}
	return avail
}

func init() {
	searchCmd.Flags().BoolVarP(&searchIgnoreCase, "ignore-case", "i", false, "Case-insensitive matching")
	rootCmd.AddCommand(searchCmd)
}
