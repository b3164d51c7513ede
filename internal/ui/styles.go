package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color palette
// - Default (white/black): primary text
// - Accent (soft green #34D399): paths, space names, counts
// - Muted (gray): secondary info, line numbers, hints

var (
	// Accent style for file paths, space names, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))

	// Muted style for secondary info, hints, line numbers
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)
)

// Colorized reports whether stdout is a terminal that wants styled
// output. Plain output is kept machine-parseable for pipes.
func Colorized() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
