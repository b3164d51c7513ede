package note

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeNote(t *testing.T, name, content string) *Note {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write note: %v", err)
	}
	return &Note{Path: path}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"h1 heading", "a.md", "# Meeting Notes\n\nbody\n", "Meeting Notes"},
		{"h1 after frontmatter", "a.md", "---\ntags: []\n---\n\n# Real Title\n", "Real Title"},
		{"h2 skipped", "walking-notes.md", "## Section\n\ntext\n", "walking notes"},
		{"no heading falls back to filename", "grocery-list.md", "milk\neggs\n", "grocery list"},
		{"indented h1 counts", "a.md", "   # Indented\n", "Indented"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := writeNote(t, tt.file, tt.content)
			if got := n.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitleUnreadableFileFallsBackToFilename(t *testing.T) {
	n := &Note{Path: filepath.Join(t.TempDir(), "missing-note.md")}
	if got := n.Title(); got != "missing note" {
		t.Errorf("Title() = %q, want %q", got, "missing note")
	}
}

func TestWordCount(t *testing.T) {
	n := writeNote(t, "a.md", "# Title\n\none two   three\nfour\n")
	got, err := n.WordCount()
	if err != nil {
		t.Fatalf("WordCount: %v", err)
	}
	// "#" counts as a token too.
	if got != 6 {
		t.Errorf("WordCount = %d, want 6", got)
	}
}

func TestWordCountEmptyFile(t *testing.T) {
	n := writeNote(t, "a.md", "")
	got, err := n.WordCount()
	if err != nil || got != 0 {
		t.Errorf("WordCount = %d, %v, want 0, nil", got, err)
	}
}

func TestTags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"list form", "---\ntags:\n  - go\n  - notes\n---\n\n# T\n", []string{"go", "notes"}},
		{"flow form", "---\ntags: [a, b]\n---\n", []string{"a", "b"}},
		{"no frontmatter", "# T\n", nil},
		{"unterminated frontmatter", "---\ntags: [a]\n", nil},
		{"broken yaml", "---\ntags: [unclosed\n---\n", nil},
		{"frontmatter without tags", "---\ntitle: x\n---\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := writeNote(t, "a.md", tt.content)
			if got := n.Tags(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContentIsCached(t *testing.T) {
	n := writeNote(t, "a.md", "original")
	if _, err := n.Content(); err != nil {
		t.Fatalf("Content: %v", err)
	}

	// A rewrite after the first read must not change what the record sees.
	if err := os.WriteFile(n.Path, []byte("changed"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	data, err := n.Content()
	if err != nil {
		t.Fatalf("Content: %v", err)
	}
	if string(data) != "original" {
		t.Errorf("Content = %q, want cached %q", data, "original")
	}
}
