// Package slugify derives URL-safe identifiers from human-readable titles.
// The same rule produces post/category/tag slugs and heading anchor ids, so
// table-of-contents links always match the ids the renderer assigns.
package slugify

import (
	"regexp"
	"strings"
)

var (
	disallowed    = regexp.MustCompile(`[^\w\s-]`)
	separatorRuns = regexp.MustCompile(`[\s_]+`)
	hyphenEdges   = regexp.MustCompile(`^-+|-+$`)
)

// Make lower-cases and trims the input, strips characters outside word/space/
// hyphen, collapses whitespace and underscore runs to a single hyphen, and
// trims leading/trailing hyphens. It is pure, total, and idempotent; empty
// input yields the empty string.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = disallowed.ReplaceAllString(s, "")
	s = separatorRuns.ReplaceAllString(s, "-")
	return hyphenEdges.ReplaceAllString(s, "")
}

// Anchor derives a heading anchor id. It differs from Make only in that inline
// markup characters are stripped first, matching what the TOC extractor shows
// as the heading's display text.
func Anchor(heading string) string {
	return Make(stripInlineMarkup(heading))
}

var inlineMarkup = strings.NewReplacer("`", "", "*", "", "_", "", "~", "")

func stripInlineMarkup(s string) string {
	return strings.TrimSpace(inlineMarkup.Replace(s))
}
