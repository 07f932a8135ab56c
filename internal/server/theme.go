package server

import (
	"fmt"
	"net/http"

	"github.com/debemdeboas/devlog/internal/config"
	"github.com/debemdeboas/devlog/internal/theme"
	"github.com/debemdeboas/devlog/internal/util"
)

func serveThemeToggle(w http.ResponseWriter, r *http.Request) {
	newTheme := theme.Opposite(theme.GetThemeFromRequest(r))

	http.SetCookie(w, &http.Cookie{
		Name:  config.CookieTheme,
		Value: newTheme,
		Path:  "/",
	})

	syntaxTheme := theme.GetDefaultSyntaxTheme(newTheme)
	if cookie, err := r.Cookie(config.CookieSyntaxTheme); err == nil && cookie.Value != "" {
		syntaxTheme = cookie.Value
	}

	w.Header().Set(config.HHxTrigger, fmt.Sprintf(`{"themeChanged":{"value":%q,"syntaxTheme":%q}}`, newTheme, syntaxTheme))
	w.Header().Set(config.HCType, config.CTypeHTML)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(theme.GetThemeIcon(newTheme)))
}

func serveSyntaxThemeSet(w http.ResponseWriter, r *http.Request) {
	syntaxTheme := r.FormValue("syntax-theme-select")
	if syntaxTheme == "" {
		http.Error(w, "theme required", http.StatusBadRequest)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     config.CookieSyntaxTheme,
		Value:    syntaxTheme,
		Path:     "/",
		HttpOnly: true,
	})

	writeSyntaxCSS(w, syntaxTheme)
}

func serveSyntaxThemeGet(w http.ResponseWriter, r *http.Request) {
	writeSyntaxCSS(w, r.PathValue("theme"))
}

func writeSyntaxCSS(w http.ResponseWriter, syntaxTheme string) {
	themeStyle := []byte(theme.GenerateSyntaxCSS(syntaxTheme))
	w.Header().Set(config.HCType, config.CTypeCSS)
	w.Header().Set(config.HETag, util.ContentHash(themeStyle))
	w.WriteHeader(http.StatusOK)
	w.Write(themeStyle)
}
