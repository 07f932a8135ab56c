package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/debemdeboas/devlog/internal/config"
	"github.com/debemdeboas/devlog/internal/model"
	"github.com/debemdeboas/devlog/internal/routes"
	"github.com/debemdeboas/devlog/internal/util"
)

func serveRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(config.HCType, "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("User-agent: *\nDisallow: " + routes.Dashboard))
}

// serveAbout renders the fixed "About me" text.
func (s *Server) serveAbout(w http.ResponseWriter, r *http.Request) {
	data := struct {
		*model.PageData
		About config.AboutConfig
	}{
		PageData: model.NewPageData(r),
		About:    config.AppConfig.About,
	}

	w.Header().Set(config.HETag, util.ContentHash([]byte(data.Theme+data.SyntaxTheme+data.About.Name)))
	s.renderPage(w, config.TemplateAbout, data)
}

// serveDashboard shows the toasts left by the edit screen the author came
// from, then discards that screen's session.
func (s *Server) serveDashboard(w http.ResponseWriter, r *http.Request) {
	data := model.NewPageData(r)

	if sess, ok := s.session(r); ok {
		data.Toasts = pageToasts(sess.Toasts)
		s.sessions.DeleteSession(sess.ID)
		http.SetCookie(w, &http.Cookie{
			Name:   config.CookieEditSession,
			Value:  "",
			Path:   routes.Dashboard,
			MaxAge: -1,
		})
	}

	s.renderPage(w, config.TemplateDashboard, data)
}

func serveDashboardOpen(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(r.URL.Query().Get("slug"))
	http.Redirect(w, r, routes.EditPostPath(url.PathEscape(slug)), http.StatusSeeOther)
}
