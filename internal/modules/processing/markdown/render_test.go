package markdown

import (
	"fmt"
	"strings"
	"testing"
)

func TestRenderAssignsHeadingIDs(t *testing.T) {
	content := "# Hello World\n\n## Getting Started\n\nprose\n"
	html := Render(content)

	for _, want := range []string{`<h1 id="hello-world">`, `<h2 id="getting-started">`} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %s:\n%s", want, html)
		}
	}
}

func TestRenderHeadingIDsMatchToc(t *testing.T) {
	content := "# Alpha Beta\n\n## Gamma *Delta*\n\n### Epsilon `Zeta`\n\n## Rock & Roll\n"
	html := Render(content)
	for _, item := range ExtractToc(content) {
		needle := fmt.Sprintf(` id="%s"`, item.ID)
		if !strings.Contains(html, needle) {
			t.Errorf("TOC anchor %q has no matching heading id in:\n%s", item.ID, html)
		}
	}
}

func TestRenderSanitizes(t *testing.T) {
	html := Render("hello <script>alert(1)</script> world")
	if strings.Contains(html, "<script>") {
		t.Errorf("script tag survived sanitization:\n%s", html)
	}
	if !strings.Contains(html, "hello") {
		t.Errorf("prose lost during sanitization:\n%s", html)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render("   \n  "); got != "" {
		t.Errorf("Render(blank) = %q, want empty", got)
	}
}
