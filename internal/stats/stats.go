// Package stats aggregates corpus-wide note statistics.
package stats

import (
	"sort"

	"github.com/samverdant/vfm/internal/corpus"
)

// TopTagLimit caps the frontmatter tag breakdown in a Report.
const TopTagLimit = 5

// Report summarizes one corpus scan. It is recomputed on every
// invocation and never persisted.
type Report struct {
	NoteCount  int `json:"note_count"`
	TotalWords int `json:"total_words"`

	// MostActiveSpace is the space with the highest note count; ties
	// break toward the lexicographically first name. Empty when the
	// corpus is empty.
	MostActiveSpace string `json:"most_active_space,omitempty"`

	SpaceCounts map[string]int `json:"space_counts"`
	TopTags     []TagCount     `json:"top_tags,omitempty"`

	// Skipped counts files that could not be read.
	Skipped int `json:"skipped,omitempty"`
}

// TagCount is one frontmatter tag and its occurrence count.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Aggregator consumes scan records and produces a Report.
type Aggregator struct {
	report Report
	tags   map[string]int
	warn   func(path string, err error)
}

// NewAggregator returns an empty Aggregator. warn, when non-nil, is
// called for each file that had to be skipped.
func NewAggregator(warn func(path string, err error)) *Aggregator {
	return &Aggregator{
		report: Report{SpaceCounts: make(map[string]int)},
		tags:   make(map[string]int),
		warn:   warn,
	}
}

// Observe consumes one scan record. It is a corpus.Handler and always
// returns nil: an unreadable file is skipped, never fatal to the scan.
func (a *Aggregator) Observe(rec corpus.Record) error {
	if rec.Err != nil {
		a.skip(rec.Path, rec.Err)
		return nil
	}

	words, err := rec.Note.WordCount()
	if err != nil {
		a.skip(rec.Note.Path, err)
		return nil
	}

	a.report.NoteCount++
	a.report.TotalWords += words
	a.report.SpaceCounts[rec.Note.Space]++
	for _, tag := range rec.Note.Tags() {
		a.tags[tag]++
	}
	return nil
}

func (a *Aggregator) skip(path string, err error) {
	a.report.Skipped++
	if a.warn != nil {
		a.warn(path, err)
	}
}

// Report finalizes the aggregate.
func (a *Aggregator) Report() Report {
	r := a.report

	names := make([]string, 0, len(r.SpaceCounts))
	for name := range r.SpaceCounts {
		names = append(names, name)
	}
	sort.Strings(names)

	best, bestCount := "", 0
	for _, name := range names {
		if r.SpaceCounts[name] > bestCount {
			best, bestCount = name, r.SpaceCounts[name]
		}
	}
	r.MostActiveSpace = best

	r.TopTags = topTags(a.tags, TopTagLimit)
	return r
}

func topTags(counts map[string]int, limit int) []TagCount {
	out := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
