// Package slugs derives filesystem-safe note filename stems from titles.
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// Title converts a note title to a lower-cased filename stem with runs of
// whitespace and path-unsafe characters collapsed to single dashes.
//
// Slugging is delegated to gosimple/slug; when a title has no sluggable
// characters at all, a conservative whitespace replacement is used so the
// result is still non-empty for any non-blank title.
func Title(s string) string {
	s = strings.TrimSuffix(strings.TrimSpace(s), ".md")
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.Join(strings.Fields(s), "-"))
	}
	return slugged
}
