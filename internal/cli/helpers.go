package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samverdant/vfm/internal/config"
	"github.com/samverdant/vfm/internal/note"
	"github.com/samverdant/vfm/internal/search"
	"github.com/samverdant/vfm/internal/space"
	"github.com/samverdant/vfm/internal/ui"
)

// errorCode maps component sentinel errors to stable CLI codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, config.ErrNotFound):
		return ErrConfigNotFound
	case errors.Is(err, config.ErrCorrupt):
		return ErrConfigCorrupt
	case errors.Is(err, config.ErrInvalid):
		return ErrConfigInvalid
	case errors.Is(err, config.ErrPathConflict):
		return ErrPathConflict
	case errors.Is(err, space.ErrUnknownSpace):
		return ErrUnknownSpace
	case errors.Is(err, space.ErrPathEscape):
		return ErrPathEscape
	case errors.Is(err, note.ErrTitleEmpty):
		return ErrTitleEmpty
	case errors.Is(err, search.ErrInvalidPattern):
		return ErrInvalidPattern
	default:
		return ErrInternal
	}
}

// warnScan reports a per-file scan problem to stderr. Scan problems
// never abort a command.
func warnScan(path string, err error) {
	fmt.Fprintln(os.Stderr, ui.Warningf("skipping %s: %v", path, err))
}

// resolveTargetOrAll resolves an optional SPACE_OR_PATH argument.
// Empty or "all" selects the whole corpus.
func resolveTargetOrAll(target string) (string, error) {
	if target == "" || target == "all" {
		return "", nil
	}
	return space.Resolve(cfg, target)
}

// hintSpaces suggests the configured space names after a resolution error.
func hintSpaces() string {
	if cfg == nil || len(cfg.Spaces) == 0 {
		return ""
	}
	return fmt.Sprintf("Configured spaces: %s", strings.Join(cfg.Spaces, ", "))
}
