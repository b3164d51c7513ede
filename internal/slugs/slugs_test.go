package slugs

import "testing"

func TestTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Meeting Notes", "meeting-notes"},
		{"already lower", "groceries", "groceries"},
		{"collapses whitespace", "A   B\tC", "a-b-c"},
		{"punctuation", "What's up? (draft)", "whats-up-draft"},
		{"md suffix stripped", "Ideas.md", "ideas"},
		{"leading and trailing space", "  Walden  ", "walden"},
		{"accents transliterated", "café au lait", "cafe-au-lait"},
		{"numbers kept", "2026 goals", "2026-goals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.input); got != tt.want {
				t.Errorf("Title(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
