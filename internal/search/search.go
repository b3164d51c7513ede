// Package search applies an egrep-style pattern across note contents.
package search

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"regexp"

	"github.com/samverdant/vfm/internal/corpus"
	"github.com/samverdant/vfm/internal/note"
)

// ErrInvalidPattern means the pattern did not compile. It is reported
// before any file is read.
var ErrInvalidPattern = errors.New("invalid pattern")

// Match is one matching line within a note. Not persisted.
type Match struct {
	Path  string `json:"path"`
	Space string `json:"space"`
	Line  int    `json:"line"` // 1-based
	Text  string `json:"text"`
}

// Engine holds a pattern compiled exactly once.
type Engine struct {
	re   *regexp.Regexp
	warn func(path string, err error)
}

// New compiles pattern. With ignoreCase the whole pattern is wrapped in
// (?i), matching the egrep -i behavior. warn, when non-nil, is called
// for files that had to be skipped.
func New(pattern string, ignoreCase bool, warn func(path string, err error)) (*Engine, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return &Engine{re: re, warn: warn}, nil
}

// Observe consumes one scan record and emits a Match for every line of
// the note the pattern matches. Matches preserve the scanner's
// traversal order; within a note, line order is ascending. Per-file
// read failures are reported through warn and skipped.
func (e *Engine) Observe(rec corpus.Record, emit func(Match) error) error {
	if rec.Err != nil {
		e.skip(rec.Path, rec.Err)
		return nil
	}
	return e.searchNote(rec.Note, emit)
}

func (e *Engine) searchNote(n *note.Note, emit func(Match) error) error {
	content, err := n.Content()
	if err != nil {
		e.skip(n.Path, err)
		return nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if e.re.MatchString(line) {
			if err := emit(Match{Path: n.Path, Space: n.Space, Line: lineNo, Text: line}); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		e.skip(n.Path, err)
	}
	return nil
}

func (e *Engine) skip(path string, err error) {
	if e.warn != nil {
		e.warn(path, err)
	}
}
