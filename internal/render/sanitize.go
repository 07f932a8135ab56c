package render

import "github.com/microcosm-cc/bluemonday"

// Post bodies may embed raw HTML. Styling classes stay so chroma output
// keeps its colours.
var sanitizer = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowStyling()
	return p
}()

func Sanitize(html []byte) []byte {
	return sanitizer.SanitizeBytes(html)
}
