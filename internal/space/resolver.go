// Package space resolves user-supplied space/path tokens to absolute,
// traversal-safe directories under the configured root.
package space

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samverdant/vfm/internal/config"
)

var (
	// ErrUnknownSpace means the first segment of a token does not match
	// any configured space name.
	ErrUnknownSpace = errors.New("unknown space")

	// ErrPathEscape means the resolved path would land outside the space
	// directory (".." traversal).
	ErrPathEscape = errors.New("path escapes space")
)

// Resolve maps token to an absolute path under one of the configured
// spaces. The first path segment must exactly match a configured space
// name (case-sensitive); any remainder is appended beneath that space's
// directory. A bare space name resolves to the space directory itself.
func Resolve(cfg *config.Config, token string) (string, error) {
	cleaned := filepath.ToSlash(strings.TrimSpace(token))
	cleaned = strings.TrimPrefix(cleaned, "./")
	cleaned = strings.Trim(cleaned, "/")
	if cleaned == "" {
		return "", fmt.Errorf("%w: empty target", ErrUnknownSpace)
	}

	name, remainder, _ := strings.Cut(cleaned, "/")
	if !cfg.HasSpace(name) {
		return "", fmt.Errorf("%w: %q (configured: %s)", ErrUnknownSpace, name, strings.Join(cfg.Spaces, ", "))
	}

	spaceDir := cfg.SpaceDir(name)
	if remainder == "" {
		return spaceDir, nil
	}

	resolved := filepath.Clean(filepath.Join(spaceDir, filepath.FromSlash(remainder)))
	if resolved != spaceDir && !strings.HasPrefix(resolved, spaceDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscape, token)
	}
	return resolved, nil
}
