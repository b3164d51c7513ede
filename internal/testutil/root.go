// Package testutil provides filesystem fixtures for vfm tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samverdant/vfm/internal/config"
)

// TestRoot builds a temporary note root with spaces and note files.
type TestRoot struct {
	Path   string
	t      *testing.T
	spaces []string
	files  map[string]string
}

// NewTestRoot creates a new root builder with the default two spaces.
// Call Build() to create the directory tree.
func NewTestRoot(t *testing.T) *TestRoot {
	t.Helper()
	return &TestRoot{
		t:      t,
		spaces: []string{"vfm.private", "vfm.public"},
		files:  make(map[string]string),
	}
}

// WithSpaces replaces the default space set.
func (r *TestRoot) WithSpaces(names ...string) *TestRoot {
	r.spaces = names
	return r
}

// WithNote adds a note file. The path is relative to the root.
func (r *TestRoot) WithNote(relPath, content string) *TestRoot {
	r.files[relPath] = content
	return r
}

// Build creates the directory tree and returns a validated Config
// pointing at it.
func (r *TestRoot) Build() *config.Config {
	r.t.Helper()

	r.Path = r.t.TempDir()
	for _, name := range r.spaces {
		if err := os.MkdirAll(filepath.Join(r.Path, name), 0o755); err != nil {
			r.t.Fatalf("failed to create space %s: %v", name, err)
		}
	}
	for relPath, content := range r.files {
		r.WriteFile(relPath, content)
	}

	return &config.Config{
		RootPath:     r.Path,
		Spaces:       r.spaces,
		NoteTemplate: config.DefaultTemplate,
	}
}

// WriteFile writes a file under the root, creating directories as needed.
func (r *TestRoot) WriteFile(relPath, content string) {
	r.t.Helper()
	fullPath := filepath.Join(r.Path, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		r.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		r.t.Fatalf("failed to write file %s: %v", relPath, err)
	}
}

// ReadFile reads a file from the root.
func (r *TestRoot) ReadFile(relPath string) string {
	r.t.Helper()
	content, err := os.ReadFile(filepath.Join(r.Path, relPath))
	if err != nil {
		r.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(content)
}

// FileExists checks if a file exists under the root.
func (r *TestRoot) FileExists(relPath string) bool {
	r.t.Helper()
	_, err := os.Stat(filepath.Join(r.Path, relPath))
	return err == nil
}
