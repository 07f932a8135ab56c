package model

import (
	"html/template"
	"net/http"

	"github.com/debemdeboas/devlog/internal/config"
	"github.com/debemdeboas/devlog/internal/theme"
)

// Toast is a notification rendered into the page.
type Toast struct {
	Kind    string
	Message string
}

type PageData struct {
	SiteName string
	PageURL  string

	Theme          string
	ThemeIcon      template.HTML
	AllowSwitching bool

	SyntaxCSS    template.CSS
	SyntaxTheme  string
	SyntaxThemes []string

	Toasts []Toast
}

func NewPageData(r *http.Request) *PageData {
	pageTheme := theme.GetThemeFromRequest(r)
	syntaxTheme := theme.GetSyntaxThemeFromRequest(r)
	return &PageData{
		SiteName:       config.AppConfig.Site.Name,
		PageURL:        r.URL.Path,
		Theme:          pageTheme,
		ThemeIcon:      template.HTML(theme.GetThemeIcon(pageTheme)),
		AllowSwitching: config.AppConfig.Theme.AllowSwitching,
		SyntaxTheme:    syntaxTheme,
		SyntaxThemes:   theme.GetSyntaxThemes(),
		SyntaxCSS:      theme.GenerateSyntaxCSS(syntaxTheme),
	}
}
