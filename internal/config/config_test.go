package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{"vfm.private", "vfm.public"} {
		if err := os.MkdirAll(filepath.Join(root, name), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", name, err)
		}
	}
	return &Config{
		RootPath:     root,
		Spaces:       []string{"vfm.private", "vfm.public"},
		NoteTemplate: DefaultTemplate,
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadFromGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("{{{ not toml"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadFrom(path)
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cfg := validConfig(t)
	cfg.Editor = "vim"
	path := filepath.Join(t.TempDir(), "vfm", "config.toml")

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.RootPath != cfg.RootPath {
		t.Errorf("RootPath = %q, want %q", loaded.RootPath, cfg.RootPath)
	}
	if len(loaded.Spaces) != 2 || loaded.Spaces[0] != "vfm.private" {
		t.Errorf("Spaces = %v, want %v", loaded.Spaces, cfg.Spaces)
	}
	if loaded.NoteTemplate != cfg.NoteTemplate {
		t.Errorf("NoteTemplate round-trip mismatch")
	}
	if loaded.Editor != "vim" {
		t.Errorf("Editor = %q, want vim", loaded.Editor)
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := validConfig(t).Validate(); err != nil {
			t.Fatalf("Validate: %v", err)
		}
	})

	t.Run("missing root", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.RootPath = filepath.Join(cfg.RootPath, "nope")
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("expected ErrInvalid, got %v", err)
		}
	})

	t.Run("no spaces", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Spaces = nil
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("expected ErrInvalid, got %v", err)
		}
	})

	t.Run("duplicate space", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Spaces = []string{"vfm.private", "vfm.private"}
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("expected ErrInvalid, got %v", err)
		}
	})

	t.Run("separator in name", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Spaces = []string{"a/b"}
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("expected ErrInvalid, got %v", err)
		}
	})

	t.Run("missing space directory", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Spaces = append(cfg.Spaces, "vfm.extra")
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("expected ErrInvalid, got %v", err)
		}
	})
}

func TestGetEditorFallsBackToEnv(t *testing.T) {
	t.Setenv("EDITOR", "nano")

	cfg := &Config{}
	if got := cfg.GetEditor(); got != "nano" {
		t.Errorf("GetEditor = %q, want nano", got)
	}

	cfg.Editor = "vim"
	if got := cfg.GetEditor(); got != "vim" {
		t.Errorf("GetEditor = %q, want vim", got)
	}
}

func TestResolvePath(t *testing.T) {
	if got := ResolvePath("/tmp/custom.toml"); got != "/tmp/custom.toml" {
		t.Errorf("override ignored, got %q", got)
	}

	t.Setenv("VFM_CONFIG", "/tmp/env.toml")
	if got := ResolvePath(""); got != "/tmp/env.toml" {
		t.Errorf("expected $VFM_CONFIG path, got %q", got)
	}
}
