package render

// HTMLRenderer renders post markdown into sanitized HTML with one syntax
// theme. It is the renderer handed to the markdown editor.
type HTMLRenderer struct {
	SyntaxTheme string
}

func NewHTMLRenderer(syntaxTheme string) HTMLRenderer {
	return HTMLRenderer{SyntaxTheme: syntaxTheme}
}

func (r HTMLRenderer) Render(markdown []byte) []byte {
	return Sanitize(RenderMarkdownCached(markdown, r.SyntaxTheme))
}
