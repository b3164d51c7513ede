// Package corpus enumerates note files across the configured spaces.
//
// The filesystem is the single source of truth: every Scan re-walks the
// tree fresh, so there is no cache to invalidate between invocations.
package corpus

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/samverdant/vfm/internal/config"
	"github.com/samverdant/vfm/internal/note"
)

// Record is one walk result: either a discovered note or a per-file
// error. Per-file errors never abort the walk on their own; the
// consumer decides whether to warn, count, or ignore them.
type Record struct {
	// Note is set for a discovered .md file.
	Note *note.Note
	// Path identifies the offending entry when Err is set.
	Path string
	// Err is the per-file failure, if any.
	Err error
}

// Handler consumes walk records. Returning a non-nil error stops the
// whole scan early and is propagated out of Scan.
type Handler func(Record) error

// Scan walks every configured space in configuration order, or only the
// scope subtree when scope is non-empty, and invokes handler for each
// Markdown file.
//
// filepath.WalkDir visits entries in lexical order, so repeated scans
// over an unchanged corpus yield records in identical order. Hidden
// files and directories (".git", dotfiles) and non-.md files are
// skipped. Note content is not read during enumeration; the Note record
// loads it lazily when a consumer asks for words, title, or tags.
func Scan(cfg *config.Config, scope string, handler Handler) error {
	if scope != "" {
		return scanTree(cfg, scope, handler)
	}
	for _, name := range cfg.Spaces {
		if err := scanTree(cfg, cfg.SpaceDir(name), handler); err != nil {
			return err
		}
	}
	return nil
}

func scanTree(cfg *config.Config, dir string, handler Handler) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return handler(Record{Path: path, Err: err})
		}

		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return handler(Record{Path: path, Err: err})
		}

		relPath, _ := filepath.Rel(cfg.RootPath, path)
		return handler(Record{Note: &note.Note{
			Path:    path,
			RelPath: relPath,
			Space:   spaceOf(cfg, path),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}})
	})
}

// spaceOf returns the configured space whose directory contains path.
func spaceOf(cfg *config.Config, path string) string {
	for _, name := range cfg.Spaces {
		dir := cfg.SpaceDir(name)
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return name
		}
	}
	return ""
}
