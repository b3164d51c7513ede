// Package config handles the persisted vfm configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Sentinel errors for configuration failures. Callers classify with
// errors.Is; the message carries the specifics.
var (
	// ErrNotFound means no configuration file exists at the expected path.
	ErrNotFound = errors.New("config not found")

	// ErrCorrupt means the configuration file exists but cannot be parsed.
	ErrCorrupt = errors.New("config corrupt")

	// ErrInvalid means the configuration parsed but violates an invariant
	// (missing root, empty or duplicated spaces).
	ErrInvalid = errors.New("config invalid")

	// ErrPathConflict means init found a non-directory where a directory
	// is required.
	ErrPathConflict = errors.New("path conflict")
)

// DefaultTemplate is the initial note content used when init runs
// without --template.
const DefaultTemplate = `---
tags:
  - add-tag
---

# {{title}}

_Created:_ {{date}}
`

// Config represents the persisted vfm configuration.
type Config struct {
	// RootPath is the absolute directory holding one subdirectory per space.
	RootPath string `toml:"root_path"`

	// Spaces is the ordered list of space names. Each name corresponds to a
	// subdirectory of RootPath (created by init).
	Spaces []string `toml:"spaces"`

	// NoteTemplate is the initial content written to new notes.
	// Supports {{title}}, {{date}} and friends (see internal/template).
	NoteTemplate string `toml:"note_template"`

	// Editor is the command used to open notes (defaults to $EDITOR).
	Editor string `toml:"editor,omitempty"`
}

// HasSpace reports whether name is a configured space (case-sensitive).
func (c *Config) HasSpace(name string) bool {
	for _, s := range c.Spaces {
		if s == name {
			return true
		}
	}
	return false
}

// SpaceDir returns the absolute directory for a configured space name.
func (c *Config) SpaceDir(name string) string {
	return filepath.Join(c.RootPath, name)
}

// GetEditor returns the editor command, falling back to $EDITOR.
func (c *Config) GetEditor() string {
	if c.Editor != "" {
		return c.Editor
	}
	return os.Getenv("EDITOR")
}

// Validate checks the on-disk layout invariants: RootPath must be an
// existing directory and every space must be an existing subdirectory.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.RootPath) == "" {
		return fmt.Errorf("%w: root_path is empty", ErrInvalid)
	}
	info, err := os.Stat(c.RootPath)
	if err != nil {
		return fmt.Errorf("%w: root_path %s does not exist", ErrInvalid, c.RootPath)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: root_path %s is not a directory", ErrInvalid, c.RootPath)
	}

	if len(c.Spaces) == 0 {
		return fmt.Errorf("%w: no spaces configured", ErrInvalid)
	}
	seen := make(map[string]struct{}, len(c.Spaces))
	for _, name := range c.Spaces {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: empty space name", ErrInvalid)
		}
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%w: space name %q contains a path separator", ErrInvalid, name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate space name %q", ErrInvalid, name)
		}
		seen[name] = struct{}{}

		dirInfo, err := os.Stat(c.SpaceDir(name))
		if err != nil || !dirInfo.IsDir() {
			return fmt.Errorf("%w: space directory missing: %s (re-run 'vfm init')", ErrInvalid, c.SpaceDir(name))
		}
	}
	return nil
}

// Load loads and validates the configuration from the well-known path.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads and validates the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s (run 'vfm init' first)", ErrNotFound, path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolvePath returns override when set, otherwise the well-known path.
func ResolvePath(override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	return DefaultPath()
}

// DefaultPath returns the well-known config file path.
// $VFM_CONFIG wins, then ~/.config/vfm/config.toml (XDG style),
// then the OS-specific config dir.
func DefaultPath() string {
	if env := os.Getenv("VFM_CONFIG"); env != "" {
		return env
	}

	// Prefer XDG-style ~/.config/vfm/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "vfm", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "vfm", "config.toml")
	}

	// Last resort fallback
	return filepath.Join(".", "config.toml")
}
