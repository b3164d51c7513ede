// Package atomicfile implements temp-file-then-rename writes so a crash
// mid-write never leaves a half-written file visible at its final path.
package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes data to path by creating a temporary file in the same
// directory and renaming it into place. The rename is the commit point:
// readers see either the old content or the new content, never a torn write.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	// No-op after a successful rename; cleans up on every failure path.
	defer os.Remove(tmpPath)

	// Some filesystems reject chmod on temp files; the write still proceeds.
	_ = tmp.Chmod(perm)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
