// Package cli implements the command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samverdant/vfm/internal/config"
)

var (
	// Global flags
	configPathFlag string

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vfm",
	Short: "vfm - Markdown notes organized into spaces",
	Long: `vfm organizes plaintext Markdown notes into top-level spaces
(private, public, freeform) under a single root directory.

The filesystem is the database: every command loads the configuration
fresh and re-walks the note tree, so there is nothing to sync or
reindex.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that bootstrap or never touch the corpus skip config loading.
		switch cmd.Name() {
		case "init", "version", "completion", "help":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		resolvedConfigPath = config.ResolvePath(configPathFlag)
		loaded, err := config.LoadFrom(resolvedConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}
