package markdown

import (
	"strings"
	"testing"
)

func TestReadingTimeMinimumOneMinute(t *testing.T) {
	for _, content := range []string{"", "   ", "short note", "# heading only"} {
		if got := ReadingTime(content); got != 1 {
			t.Errorf("ReadingTime(%q) = %d, want 1", content, got)
		}
	}
}

func TestReadingTimeRoundsUp(t *testing.T) {
	cases := []struct {
		words int
		want  int
	}{
		{1, 1},
		{200, 1},
		{201, 2},
		{400, 2},
		{401, 3},
		{1000, 5},
	}
	for _, tc := range cases {
		content := strings.TrimSpace(strings.Repeat("word ", tc.words))
		if got := ReadingTime(content); got != tc.want {
			t.Errorf("ReadingTime(%d words) = %d, want %d", tc.words, got, tc.want)
		}
	}
}

func TestReadingTimeIgnoresNonProse(t *testing.T) {
	prose := strings.TrimSpace(strings.Repeat("word ", 250))
	fenced := prose + "\n\n```go\n" + strings.Repeat("code ", 500) + "\n```\n"
	if got := ReadingTime(fenced); got != 2 {
		t.Errorf("code fence changed estimate: got %d, want 2", got)
	}

	withImages := prose + "\n![diagram](https://example.com/a.png)\n"
	if got := ReadingTime(withImages); got != 2 {
		t.Errorf("image changed estimate: got %d, want 2", got)
	}

	if got := ReadingTime("see [the docs](https://example.com) here"); got != 1 {
		t.Errorf("link text estimate = %d, want 1", got)
	}
}

func TestExtractToc(t *testing.T) {
	content := `# Intro

Some prose.

## Getting *Started*

### Deep `+ "`Dive`" + `

#### Fine Print

##### Too Deep

not# a heading
`
	items := ExtractToc(content)
	want := []TocItem{
		{Level: 1, Text: "Intro", ID: "intro"},
		{Level: 2, Text: "Getting Started", ID: "getting-started"},
		{Level: 3, Text: "Deep Dive", ID: "deep-dive"},
		{Level: 4, Text: "Fine Print", ID: "fine-print"},
	}
	if len(items) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(items), len(want), items)
	}
	for i, w := range want {
		if items[i] != w {
			t.Errorf("entry %d = %+v, want %+v", i, items[i], w)
		}
	}
}

func TestExtractTocEmpty(t *testing.T) {
	if items := ExtractToc("just prose, no headings"); len(items) != 0 {
		t.Errorf("expected no entries, got %+v", items)
	}
}
