// Package note defines the note record and note creation.
package note

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Note is a single Markdown file discovered in a space. Content, word
// count, title, and tags are loaded on first use so plain enumeration
// never reads file bodies.
type Note struct {
	// Path is the absolute file path.
	Path string
	// RelPath is the path relative to the configured root.
	RelPath string
	// Space is the owning top-level space name.
	Space string
	// Size is the file size in bytes.
	Size int64
	// ModTime is the filesystem modification time.
	ModTime time.Time

	content []byte
	loaded  bool
}

// Content returns the raw note text, reading the file on first call.
func (n *Note) Content() ([]byte, error) {
	if !n.loaded {
		data, err := os.ReadFile(n.Path)
		if err != nil {
			return nil, err
		}
		n.content = data
		n.loaded = true
	}
	return n.content, nil
}

// WordCount counts whitespace-delimited tokens in the note content.
func (n *Note) WordCount() (int, error) {
	data, err := n.Content()
	if err != nil {
		return 0, err
	}
	return len(strings.Fields(string(data))), nil
}

// Title returns the first H1 heading ("# ..."), falling back to a name
// derived from the filename. Deeper headings ("## ...") are skipped.
func (n *Note) Title() string {
	if data, err := n.Content(); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			trimmed := strings.TrimSpace(line)
			if rest, ok := strings.CutPrefix(trimmed, "# "); ok {
				return strings.TrimSpace(rest)
			}
		}
	}
	base := strings.TrimSuffix(filepath.Base(n.Path), ".md")
	return strings.ReplaceAll(base, "-", " ")
}

// Tags returns the tag list from the note's YAML frontmatter. Notes
// without frontmatter, or with frontmatter that does not parse, yield
// no tags rather than an error.
func (n *Note) Tags() []string {
	data, err := n.Content()
	if err != nil {
		return nil
	}
	fm, ok := frontmatter(string(data))
	if !ok {
		return nil
	}

	var doc struct {
		Tags []string `yaml:"tags"`
	}
	if err := yaml.Unmarshal([]byte(fm), &doc); err != nil {
		return nil
	}
	return doc.Tags
}

// frontmatter extracts the YAML block between leading "---" fences.
func frontmatter(content string) (string, bool) {
	if !strings.HasPrefix(content, "---\n") {
		return "", false
	}
	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}
