// Package editor launches the configured editor on a note file.
package editor

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/samverdant/vfm/internal/config"
)

// Open starts the configured editor on path in the background
// (non-blocking). Returns false when no editor is configured or the
// launch fails.
//
// Compound commands with flags (e.g. "code --wait", "open -a Cursor")
// are executed via the shell so the arguments survive.
func Open(cfg *config.Config, path string) bool {
	if cfg == nil {
		return false
	}
	command := cfg.GetEditor()
	if command == "" {
		return false
	}

	var cmd *exec.Cmd
	if strings.Contains(command, " ") {
		cmd = exec.Command("sh", "-c", command+" "+quote(path))
	} else {
		cmd = exec.Command(command, path)
	}

	if err := cmd.Start(); err != nil {
		fmt.Printf("Warning: failed to launch editor %q: %v\n", command, err)
		return false
	}
	return true
}

// OpenOrPrintPath opens path in the editor, or prints it when no editor
// is configured.
func OpenOrPrintPath(cfg *config.Config, path string) {
	if !Open(cfg, path) {
		fmt.Printf("Open: %s\n", path)
		fmt.Println("(Set 'editor' in the vfm config or $EDITOR to open automatically)")
	}
}

// quote wraps s in single quotes, escaping internal single quotes.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
