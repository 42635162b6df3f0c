package markdown

import (
	"math"
	"regexp"
	"strings"

	"github.com/misterbista/portfolio-api/internal/pkg/slugify"
)

const wordsPerMinute = 200

// TocItem is one table-of-contents entry derived from a markdown heading.
type TocItem struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id"`
}

var (
	codeFencePattern = regexp.MustCompile("(?s)```.*?```")
	imagePattern     = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkPattern      = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	syntaxChars      = regexp.MustCompile("[#*`~>|-]")
	headingPattern   = regexp.MustCompile(`(?m)^(#{1,4})\s+(.+)$`)
)

// ReadingTime estimates minutes to read the markdown content at 200 words per
// minute. Markup is stripped before counting; link syntax collapses to the
// link text. The result is always at least 1.
func ReadingTime(content string) int {
	text := codeFencePattern.ReplaceAllString(content, "")
	text = imagePattern.ReplaceAllString(text, "")
	text = linkPattern.ReplaceAllString(text, "$1")
	text = syntaxChars.ReplaceAllString(text, "")

	words := 0
	for _, field := range strings.Fields(text) {
		if field != "" {
			words++
		}
	}

	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// ExtractToc scans markdown for level 1–4 headings in document order. Anchor
// ids use the same rule the renderer applies when assigning heading ids, so a
// TOC link always resolves against the rendered document.
func ExtractToc(content string) []TocItem {
	matches := headingPattern.FindAllStringSubmatch(content, -1)
	items := make([]TocItem, 0, len(matches))
	for _, m := range matches {
		text := stripInline(m[2])
		items = append(items, TocItem{
			Level: len(m[1]),
			Text:  text,
			ID:    slugify.Anchor(m[2]),
		})
	}
	return items
}

var inlineMarkup = strings.NewReplacer("`", "", "*", "", "_", "", "~", "")

func stripInline(s string) string {
	return strings.TrimSpace(inlineMarkup.Replace(s))
}
