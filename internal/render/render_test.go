package render

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/debemdeboas/devlog/internal/cache"
	"github.com/debemdeboas/devlog/internal/util"
)

func setupTest() {
	cache.ClearRenderedMarkdownCache()
}

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		contains []string
	}{
		{
			name:     "heading",
			markdown: "# Hi",
			contains: []string{"<h1", "Hi</h1>"},
		},
		{
			name:     "emphasis and links",
			markdown: "Some *text* and [a link](https://example.com).",
			contains: []string{"<em>text</em>", `href="https://example.com"`},
		},
		{
			name:     "fenced code is highlighted",
			markdown: "```go\nfunc main() {}\n```",
			contains: []string{`<div class="highlight">`, "chroma"},
		},
		{
			name:     "code is escaped",
			markdown: "```go\nif a < b {}\n```",
			contains: []string{"&lt;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := string(RenderMarkdown([]byte(tt.markdown), "github"))
			for _, want := range tt.contains {
				if !strings.Contains(html, want) {
					t.Errorf("Expected %q in output, got %s", want, html)
				}
			}
		})
	}
}

func TestRenderMarkdownClassic(t *testing.T) {
	html := string(RenderMarkdownClassic([]byte("# Title\r\n\r\n```go\nx := 1\n```"), "monokai"))
	if !strings.Contains(html, "Title</h1>") {
		t.Errorf("Expected heading, got %s", html)
	}
	if !strings.Contains(html, `<div class="highlight">`) {
		t.Errorf("Expected highlighted code, got %s", html)
	}
}

func TestHighlightCodeCallout(t *testing.T) {
	html := HighlightCode("x := 1 // <<1>>", "go", "github")
	if !strings.Contains(html, `<span class="callout">1</span>`) {
		t.Errorf("Expected callout span, got %s", html)
	}
}

func TestRenderMarkdownCached(t *testing.T) {
	setupTest()

	md := []byte("# Cached\n\nSome `code`")
	html1 := RenderMarkdownCached(md, "github")

	cached, found := cache.GetRenderedMarkdown(util.ContentHash(md), "github")
	if !found {
		t.Fatal("Expected rendered markdown to be cached")
	}
	if !bytes.Equal(cached.HTML, html1) {
		t.Error("Cached HTML should match rendered HTML")
	}

	html2 := RenderMarkdownCached(md, "github")
	if !bytes.Equal(html1, html2) {
		t.Error("Cache hit should return identical HTML")
	}

	if _, found := cache.GetRenderedMarkdown(util.ContentHash(md), "monokai"); found {
		t.Error("Expected a different syntax theme to miss the cache")
	}
}

func TestRenderMarkdownCachedConcurrency(t *testing.T) {
	setupTest()

	md := []byte("# Concurrent Test\n\nContent with `code`")
	want := RenderMarkdown(md, "github")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := RenderMarkdownCached(md, "github"); !bytes.Equal(got, want) {
				t.Error("Concurrent render returned different HTML")
			}
		}()
	}
	wg.Wait()
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		mustHave   string
		mustNotHave string
	}{
		{
			name:        "script removed",
			input:       `<p>hi</p><script>alert(1)</script>`,
			mustHave:    "<p>hi</p>",
			mustNotHave: "<script>",
		},
		{
			name:        "event handler removed",
			input:       `<img src="x.png" onerror="alert(1)">`,
			mustHave:    `src="x.png"`,
			mustNotHave: "onerror",
		},
		{
			name:        "styling classes kept",
			input:       `<span class="chroma">x</span>`,
			mustHave:    `class="chroma"`,
			mustNotHave: "<script>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := string(Sanitize([]byte(tt.input)))
			if !strings.Contains(out, tt.mustHave) {
				t.Errorf("Expected %q in %s", tt.mustHave, out)
			}
			if strings.Contains(out, tt.mustNotHave) {
				t.Errorf("Expected %q to be stripped from %s", tt.mustNotHave, out)
			}
		})
	}
}

func TestHTMLRenderer(t *testing.T) {
	setupTest()

	r := NewHTMLRenderer("github")
	html := string(r.Render([]byte("# Hi\n\n<script>alert(1)</script>")))

	if !strings.Contains(html, "Hi</h1>") {
		t.Errorf("Expected rendered heading, got %s", html)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("Expected script to be sanitized, got %s", html)
	}
}
