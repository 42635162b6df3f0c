package slugify

import (
	"regexp"
	"testing"
)

var wellFormed = regexp.MustCompile(`^[a-z0-9-]*$`)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"already a slug", "hello-world", "hello-world"},
		{"punctuation stripped", "Hello, World! How's it going?", "hello-world-hows-it-going"},
		{"underscores collapse", "snake_case_title", "snake-case-title"},
		{"whitespace runs", "  spaced \t out\n title  ", "spaced-out-title"},
		{"mixed separators", "a _ b  _c", "a-b-c"},
		{"leading and trailing hyphens", "--- trimmed ---", "trimmed"},
		{"digits kept", "Go 1.24 Released", "go-124-released"},
		{"symbols dropped", "Rock & Roll @ the Arena", "rock-roll-the-arena"},
		{"empty input", "", ""},
		{"only symbols", "!!! ??? ...", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Make(tt.input)
			if got != tt.want {
				t.Fatalf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if !wellFormed.MatchString(got) {
				t.Errorf("Make(%q) = %q contains disallowed characters", tt.input, got)
			}
			if len(got) > 0 && (got[0] == '-' || got[len(got)-1] == '-') {
				t.Errorf("Make(%q) = %q has a leading or trailing hyphen", tt.input, got)
			}
			if again := Make(got); again != got {
				t.Errorf("Make is not idempotent: Make(%q) = %q, Make(%q) = %q", tt.input, got, got, again)
			}
		})
	}
}

func TestAnchor(t *testing.T) {
	tests := []struct {
		name    string
		heading string
		want    string
	}{
		{"plain heading", "Getting Started", "getting-started"},
		{"inline code", "Using `context.Context`", "using-contextcontext"},
		{"emphasis", "Why *this* matters", "why-this-matters"},
		{"bold and strike", "**Bold** and ~~gone~~", "bold-and-gone"},
		{"snake case identifier", "The `view_count` column", "the-viewcount-column"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Anchor(tt.heading); got != tt.want {
				t.Fatalf("Anchor(%q) = %q, want %q", tt.heading, got, tt.want)
			}
		})
	}
}
