package testutil

import (
	"os"
	"path/filepath"
	"strings"
)

// AssertFileExists fails the test if the file does not exist.
func (r *TestRoot) AssertFileExists(relPath string) {
	r.t.Helper()
	if _, err := os.Stat(filepath.Join(r.Path, relPath)); os.IsNotExist(err) {
		r.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (r *TestRoot) AssertFileNotExists(relPath string) {
	r.t.Helper()
	if _, err := os.Stat(filepath.Join(r.Path, relPath)); err == nil {
		r.t.Errorf("expected file to not exist: %s", relPath)
	}
}

// AssertFileContains fails the test if the file does not contain substr.
func (r *TestRoot) AssertFileContains(relPath, substr string) {
	r.t.Helper()
	content := r.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		r.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertDirExists fails the test if the directory does not exist.
func (r *TestRoot) AssertDirExists(relPath string) {
	r.t.Helper()
	info, err := os.Stat(filepath.Join(r.Path, relPath))
	if os.IsNotExist(err) {
		r.t.Errorf("expected directory to exist: %s", relPath)
		return
	}
	if !info.IsDir() {
		r.t.Errorf("expected %s to be a directory, but it's a file", relPath)
	}
}
