// Package markdown turns stored post markdown into the rendered shape the
// blog views consume: sanitized HTML with heading anchors, a reading-time
// estimate, and a table of contents. The three stay mutually consistent:
// anchors and TOC ids come from one slug rule, and both operate on the same
// markdown representation.
package markdown

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"github.com/misterbista/portfolio-api/internal/pkg/slugify"
)

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Footnote,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
		htmlrenderer.WithXHTML(),
	),
)

var sanitizePolicy = newSanitizePolicy()

func newSanitizePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("class").OnElements("code", "pre")
	return p
}

var (
	headingTagPattern = regexp.MustCompile(`(?is)<h([1-4])>(.*?)</h[1-4]>`)
	anyTagPattern     = regexp.MustCompile(`<[^>]*>`)
)

// Render converts markdown to sanitized HTML with anchor ids on h1–h4.
func Render(content string) string {
	text := strings.TrimSpace(content)
	if text == "" {
		return ""
	}

	var out bytes.Buffer
	if err := markdownEngine.Convert([]byte(text), &out); err != nil {
		return template.HTMLEscapeString(text)
	}

	html := rewriteHeadingAnchors(out.String())
	return sanitizePolicy.Sanitize(html)
}

// rewriteHeadingAnchors assigns id attributes to rendered headings using the
// same slug rule ExtractToc uses for TOC entries.
func rewriteHeadingAnchors(html string) string {
	return headingTagPattern.ReplaceAllStringFunc(html, func(tag string) string {
		m := headingTagPattern.FindStringSubmatch(tag)
		if m == nil {
			return tag
		}
		level, inner := m[1], m[2]
		id := anchorID(inner)
		if id == "" {
			return tag
		}
		return fmt.Sprintf(`<h%s id=%q>%s</h%s>`, level, id, inner, level)
	})
}

func anchorID(renderedHeading string) string {
	plain := anyTagPattern.ReplaceAllString(renderedHeading, "")
	return slugify.Anchor(html.UnescapeString(plain))
}
