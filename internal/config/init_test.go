package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestInitCreatesLayout(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "notes")
	configPath := filepath.Join(base, "config.toml")

	cfg, err := Init(InitOptions{ConfigPath: configPath, RootPath: root})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	if cfg.RootPath != root {
		t.Errorf("RootPath = %q, want %q", cfg.RootPath, root)
	}
	if len(cfg.Spaces) != len(DefaultSpaces) {
		t.Errorf("Spaces = %v, want defaults %v", cfg.Spaces, DefaultSpaces)
	}
	for _, name := range DefaultSpaces {
		info, err := os.Stat(filepath.Join(root, name))
		if err != nil || !info.IsDir() {
			t.Errorf("space directory %s not created", name)
		}
	}
	if _, err := os.Stat(configPath); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	base := t.TempDir()
	opts := InitOptions{
		ConfigPath: filepath.Join(base, "config.toml"),
		RootPath:   filepath.Join(base, "notes"),
		Spaces:     []string{"work", "play"},
	}

	if _, err := Init(opts); err != nil {
		t.Fatalf("first Init: %v", err)
	}
	first, err := os.ReadFile(opts.ConfigPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	if _, err := Init(opts); err != nil {
		t.Fatalf("second Init on existing layout: %v", err)
	}
	second, err := os.ReadFile(opts.ConfigPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	if string(first) != string(second) {
		t.Errorf("config changed on re-init:\n%s\n---\n%s", first, second)
	}
}

func TestInitPathConflict(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "notes")
	if err := os.WriteFile(root, []byte("in the way"), 0o644); err != nil {
		t.Fatalf("seed conflicting file: %v", err)
	}

	_, err := Init(InitOptions{
		ConfigPath: filepath.Join(base, "config.toml"),
		RootPath:   root,
	})
	if !errors.Is(err, ErrPathConflict) {
		t.Fatalf("expected ErrPathConflict, got %v", err)
	}
}

func TestInitSpaceConflictWritesNothing(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "notes")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir root: %v", err)
	}
	// One of the space paths is taken by a regular file.
	if err := os.WriteFile(filepath.Join(root, "b"), nil, 0o644); err != nil {
		t.Fatalf("seed conflicting file: %v", err)
	}

	configPath := filepath.Join(base, "config.toml")
	_, err := Init(InitOptions{
		ConfigPath: configPath,
		RootPath:   root,
		Spaces:     []string{"a", "b"},
	})
	if !errors.Is(err, ErrPathConflict) {
		t.Fatalf("expected ErrPathConflict, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "a")); !os.IsNotExist(err) {
		t.Error("space 'a' was created despite the conflict")
	}
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Error("config was written despite the conflict")
	}
}

func TestInitCustomTemplateAndEditor(t *testing.T) {
	base := t.TempDir()
	cfg, err := Init(InitOptions{
		ConfigPath:   filepath.Join(base, "config.toml"),
		RootPath:     filepath.Join(base, "notes"),
		NoteTemplate: "# {{title}}\n",
		Editor:       "vim",
	})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if cfg.NoteTemplate != "# {{title}}\n" {
		t.Errorf("NoteTemplate = %q", cfg.NoteTemplate)
	}
	if cfg.Editor != "vim" {
		t.Errorf("Editor = %q", cfg.Editor)
	}
}
