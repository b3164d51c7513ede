package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/samverdant/vfm/internal/corpus"
	"github.com/samverdant/vfm/internal/stats"
	"github.com/samverdant/vfm/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats [space-or-path]",
	Short: "Show corpus statistics",
	Long: `Walks the note corpus and reports note count, total words, the most
active space, and the most used frontmatter tags. An empty corpus is
not an error.

Examples:
  vfm stats
  vfm stats vfm.private
  vfm stats --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := ""
		if len(args) == 1 {
			target = args[0]
		}
		scope, err := resolveTargetOrAll(target)
		if err != nil {
			return handleError(errorCode(err), err, hintSpaces())
		}

		agg := stats.NewAggregator(warnScan)
		if err := corpus.Scan(cfg, scope, agg.Observe); err != nil {
			return handleError(ErrScanError, err, "")
		}
		report := agg.Report()

		if isJSONOutput() {
			outputSuccess(report, &Meta{Count: report.NoteCount})
			return nil
		}

		fmt.Println(ui.Header("Note Statistics"))
		fmt.Printf("%s %s\n", ui.Muted.Render("Notes:      "), ui.Accent.Render(fmt.Sprintf("%d", report.NoteCount)))
		fmt.Printf("%s %s\n", ui.Muted.Render("Total words:"), ui.Accent.Render(fmt.Sprintf("%d", report.TotalWords)))
		mostActive := report.MostActiveSpace
		if mostActive == "" {
			mostActive = "(none)"
		}
		fmt.Printf("%s %s\n", ui.Muted.Render("Most active:"), ui.Accent.Render(mostActive))

		if len(report.SpaceCounts) > 0 {
			names := make([]string, 0, len(report.SpaceCounts))
			for name := range report.SpaceCounts {
				names = append(names, name)
			}
			sort.Strings(names)

			fmt.Println()
			fmt.Println(ui.Header("Per space"))
			for _, name := range names {
				fmt.Printf("  %s %s\n", ui.Accent.Render(name), ui.Muted.Render(ui.Count(report.SpaceCounts[name], "note", "notes")))
			}
		}

		if len(report.TopTags) > 0 {
			fmt.Println()
			fmt.Println(ui.Header("Top tags"))
			for _, tc := range report.TopTags {
				fmt.Printf("  %s: %d\n", tc.Tag, tc.Count)
			}
		}

		if report.Skipped > 0 {
			fmt.Println(ui.Hint(fmt.Sprintf("(%d unreadable files skipped)", report.Skipped)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
