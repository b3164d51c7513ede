// Package template renders the configured note template at creation time.
package template

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Layouts for the date placeholders.
const (
	DateLayout     = "2006-01-02"
	DatetimeLayout = "2006-01-02T15:04"
)

// Variables holds the values available to a note template.
type Variables struct {
	// Title is the title passed to vfm new
	Title string
	// Date is the creation date (YYYY-MM-DD)
	Date string
	// Datetime is the creation datetime (YYYY-MM-DDTHH:MM)
	Datetime string
	// Year is the creation year
	Year string
	// Month is the creation month (2 digit)
	Month string
	// Day is the creation day (2 digit)
	Day string
	// Weekday is the day name (Monday, Tuesday, etc.)
	Weekday string
}

// NewVariables builds Variables for a note titled title, created now.
func NewVariables(title string) *Variables {
	return newVariablesAt(title, time.Now())
}

func newVariablesAt(title string, now time.Time) *Variables {
	return &Variables{
		Title:    title,
		Date:     now.Format(DateLayout),
		Datetime: now.Format(DatetimeLayout),
		Year:     now.Format("2006"),
		Month:    now.Format("01"),
		Day:      now.Format("02"),
		Weekday:  now.Weekday().String(),
	}
}

// LoadFile reads template content from an explicit file path
// (vfm init --template).
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", path, err)
	}
	return string(data), nil
}

// Apply substitutes template variables in the content.
// Variables use {{name}} syntax. Unknown variables are left as-is.
// Escaped variables \{{name}} are converted to literal {{name}}.
func Apply(content string, vars *Variables) string {
	if content == "" || vars == nil {
		return content
	}

	// Park escaped sequences so they survive substitution.
	content = strings.ReplaceAll(content, `\{{`, "«VFM_ESC_OPEN»")
	content = strings.ReplaceAll(content, `\}}`, "«VFM_ESC_CLOSE»")

	replacements := map[string]string{
		"{{title}}":    vars.Title,
		"{{date}}":     vars.Date,
		"{{datetime}}": vars.Datetime,
		"{{year}}":     vars.Year,
		"{{month}}":    vars.Month,
		"{{day}}":      vars.Day,
		"{{weekday}}":  vars.Weekday,
	}
	for placeholder, value := range replacements {
		content = strings.ReplaceAll(content, placeholder, value)
	}

	content = strings.ReplaceAll(content, "«VFM_ESC_OPEN»", "{{")
	content = strings.ReplaceAll(content, "«VFM_ESC_CLOSE»", "}}")

	return content
}
