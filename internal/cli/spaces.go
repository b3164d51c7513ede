package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samverdant/vfm/internal/corpus"
	"github.com/samverdant/vfm/internal/stats"
	"github.com/samverdant/vfm/internal/ui"
)

var spacesCmd = &cobra.Command{
	Use:   "spaces",
	Short: "List configured spaces with note counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		agg := stats.NewAggregator(warnScan)
		if err := corpus.Scan(cfg, "", agg.Observe); err != nil {
			return handleError(ErrScanError, err, "")
		}
		report := agg.Report()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"root":   cfg.RootPath,
				"spaces": cfg.Spaces,
				"counts": report.SpaceCounts,
			}, &Meta{Count: len(cfg.Spaces)})
			return nil
		}

		fmt.Println(ui.Header("Spaces"))
		fmt.Printf("%s %s\n\n", ui.Muted.Render("Root:"), ui.FilePath(cfg.RootPath))
		for _, name := range cfg.Spaces {
			fmt.Printf("  %s %s\n", ui.Accent.Render(name), ui.Muted.Render(ui.Count(report.SpaceCounts[name], "note", "notes")))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(spacesCmd)
}
