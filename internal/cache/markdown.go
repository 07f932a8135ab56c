package cache

// maxRenderedEntries bounds the preview cache: every edit in the live
// preview renders a new document.
const maxRenderedEntries = 512

// RenderedContent is one cached rendering of post markdown.
type RenderedContent struct {
	HTML []byte
}

var renderedMarkdownCache = NewBoundedCache[string, *RenderedContent](maxRenderedEntries)

func renderedKey(contentHash, syntaxTheme string) string {
	return contentHash + ":" + syntaxTheme
}

func GetRenderedMarkdown(contentHash, syntaxTheme string) (*RenderedContent, bool) {
	return renderedMarkdownCache.Get(renderedKey(contentHash, syntaxTheme))
}

func SetRenderedMarkdown(contentHash, syntaxTheme string, html []byte) {
	renderedMarkdownCache.Set(renderedKey(contentHash, syntaxTheme), &RenderedContent{
		HTML: html,
	})
}

func ClearRenderedMarkdownCache() {
	renderedMarkdownCache.Clear()
}
