package config

import "regexp"

const (
	MarkdownRenderer = "mmark"
)

var (
	// RegexCallout matches a code callout after chroma escaped it.
	RegexCallout = regexp.MustCompile(`//\s*&lt;&lt;(\d+)&gt;&gt;`)
)
