package note

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samverdant/vfm/internal/atomicfile"
	"github.com/samverdant/vfm/internal/config"
	"github.com/samverdant/vfm/internal/slugs"
	"github.com/samverdant/vfm/internal/template"
)

// ErrTitleEmpty means the title was blank after trimming.
var ErrTitleEmpty = errors.New("title is empty")

// Create writes a new templated note under dir and returns its absolute
// path. The directory must already exist (the resolver guarantees this
// for space tokens); Create never creates directories and never
// overwrites an existing note.
//
// Filename collisions are resolved with a numeric suffix probe
// (-2, -3, ...). The probe is not atomic across processes: a concurrent
// run may claim the probed name first. That race is accepted for a
// single-user tool; the write itself is temp-then-rename, so a partial
// note is never visible either way.
func Create(cfg *config.Config, dir, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrTitleEmpty
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("target directory does not exist: %s", dir)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("target is not a directory: %s", dir)
	}

	stem := slugs.Title(title)
	path := filepath.Join(dir, stem+".md")
	for n := 2; ; n++ {
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to probe %s: %w", path, err)
		}
		path = filepath.Join(dir, fmt.Sprintf("%s-%d.md", stem, n))
	}

	content := template.Apply(cfg.NoteTemplate, template.NewVariables(title))
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if err := atomicfile.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write note: %w", err)
	}
	return path, nil
}
