package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSpaces are created when init runs without --spaces.
var DefaultSpaces = []string{"vfm.space", "vfm.private", "vfm.public"}

// InitOptions configures Init. Zero values fall back to defaults:
// current directory as root, DefaultSpaces, DefaultTemplate, and the
// well-known config path.
type InitOptions struct {
	ConfigPath   string
	RootPath     string
	Spaces       []string
	NoteTemplate string
	Editor       string
}

// Init creates the root directory and one subdirectory per space, then
// saves the configuration atomically. Re-running init on an existing,
// matching layout is a no-op and succeeds.
//
// Returns ErrPathConflict when the root or a space path exists but is
// not a directory; in that case nothing has been written.
func Init(opts InitOptions) (*Config, error) {
	rootPath := opts.RootPath
	if rootPath == "" {
		rootPath = "."
	}
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}

	spaces := opts.Spaces
	if len(spaces) == 0 {
		spaces = DefaultSpaces
	}
	noteTemplate := opts.NoteTemplate
	if noteTemplate == "" {
		noteTemplate = DefaultTemplate
	}

	// Probe every path before creating anything so a conflict leaves the
	// filesystem unchanged.
	if err := requireDirOrAbsent(absRoot); err != nil {
		return nil, err
	}
	for _, name := range spaces {
		if err := requireDirOrAbsent(filepath.Join(absRoot, name)); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(absRoot, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create root directory: %w", err)
	}
	for _, name := range spaces {
		if err := os.MkdirAll(filepath.Join(absRoot, name), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create space directory %s: %w", name, err)
		}
	}

	cfg := &Config{
		RootPath:     absRoot,
		Spaces:       spaces,
		NoteTemplate: noteTemplate,
		Editor:       opts.Editor,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := SaveTo(ResolvePath(opts.ConfigPath), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func requireDirOrAbsent(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s exists and is not a directory", ErrPathConflict, path)
	}
	return nil
}
