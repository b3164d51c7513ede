package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samverdant/vfm/internal/config"
	"github.com/samverdant/vfm/internal/template"
	"github.com/samverdant/vfm/internal/ui"
)

var (
	initRootFlag     string
	initSpacesFlag   []string
	initTemplateFlag string
	initEditorFlag   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the note root and configuration",
	Long: `Creates the note root directory, one subdirectory per space, and the
configuration file. Re-running init on an existing, matching layout is
a no-op and succeeds.

Examples:
  vfm init
  vfm init --root ~/notes --spaces drafts,private,public
  vfm init --template ~/note-template.md --editor code`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		noteTemplate := ""
		if initTemplateFlag != "" {
			var err error
			noteTemplate, err = template.LoadFile(initTemplateFlag)
			if err != nil {
				return handleError(ErrFileNotFound, err, "")
			}
		}

		cfgPath := config.ResolvePath(configPathFlag)
		created, err := config.Init(config.InitOptions{
			ConfigPath:   cfgPath,
			RootPath:     initRootFlag,
			Spaces:       initSpacesFlag,
			NoteTemplate: noteTemplate,
			Editor:       initEditorFlag,
		})
		if err != nil {
			return handleError(errorCode(err), err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config": cfgPath,
				"root":   created.RootPath,
				"spaces": created.Spaces,
			}, nil)
			return nil
		}

		fmt.Printf("Initializing note root at: %s\n", created.RootPath)
		for _, name := range created.Spaces {
			fmt.Println(ui.Successf("Ensured space: %s", name))
		}
		fmt.Println(ui.Successf("Wrote config: %s", cfgPath))
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initRootFlag, "root", ".", "Root directory for note spaces")
	initCmd.Flags().StringSliceVar(&initSpacesFlag, "spaces", nil, "Comma-separated space names (default: vfm.space,vfm.private,vfm.public)")
	initCmd.Flags().StringVar(&initTemplateFlag, "template", "", "File whose content becomes the note template")
	initCmd.Flags().StringVar(&initEditorFlag, "editor", "", "Editor command for opening notes")
	rootCmd.AddCommand(initCmd)
}
