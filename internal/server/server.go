// Package server wires the HTTP routes, pages and middleware of devlog.
package server

import (
	"bytes"
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"github.com/rs/zerolog"

	"github.com/debemdeboas/devlog/internal/cache"
	"github.com/debemdeboas/devlog/internal/config"
	"github.com/debemdeboas/devlog/internal/editor"
	"github.com/debemdeboas/devlog/internal/model"
	"github.com/debemdeboas/devlog/internal/notify"
	"github.com/debemdeboas/devlog/internal/routes"
	"github.com/debemdeboas/devlog/internal/util"
)

type Server struct {
	sessions editor.Repository
	content  fs.FS
	logger   zerolog.Logger
}

// New builds a server rendering pages from content, which must hold the
// templates and static directories.
func New(sessions editor.Repository, content fs.FS, logger zerolog.Logger) *Server {
	return &Server{
		sessions: sessions,
		content:  content,
		logger:   logger,
	}
}

// HashStatic records a content hash for every static file so responses can
// carry an ETag.
func (s *Server) HashStatic() error {
	static, err := fs.Sub(s.content, config.StaticLocalDir)
	if err != nil {
		return err
	}
	return fs.WalkDir(static, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(static, p)
		if err != nil {
			return err
		}
		cache.SetStaticHash(config.StaticUrlPath+p, util.ContentHash(data))
		return nil
	})
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	static, err := fs.Sub(s.content, config.StaticLocalDir)
	if err != nil {
		s.logger.Error().Err(err).Msg("Static directory missing from content")
		static = s.content
	}

	mux.HandleFunc("GET "+routes.Robots, serveRobots)
	mux.Handle(config.StaticUrlPath, http.StripPrefix(config.StaticUrlPath, http.FileServer(http.FS(static))))

	mux.HandleFunc("GET /{$}", s.serveAbout)
	mux.HandleFunc("GET "+routes.Dashboard, s.serveDashboard)
	mux.HandleFunc("GET "+routes.DashboardOpen, serveDashboardOpen)

	mux.HandleFunc("GET "+routes.EditPostPattern, s.serveEditPost)
	mux.HandleFunc("GET "+routes.EditPostBare, s.serveEditPost)
	mux.HandleFunc("POST "+routes.EditPostPattern, s.serveSubmitPost)
	mux.HandleFunc("POST "+routes.EditPostBare, s.serveSubmitPost)
	mux.HandleFunc("POST "+routes.Preview, s.servePreview)

	mux.HandleFunc("POST "+routes.ThemeToggle, serveThemeToggle)
	mux.HandleFunc("POST "+routes.SyntaxThemeSet, serveSyntaxThemeSet)
	mux.HandleFunc("GET "+routes.SyntaxThemeGet, serveSyntaxThemeGet)

	securedMux := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == routes.Robots { // Ignore robots.txt
			mux.ServeHTTP(w, r)
		} else {
			secureHeaders(mux.ServeHTTP)(w, r)
		}
	})

	return compress(s.logRequests(cacheIt(securedMux)))
}

// renderPage executes the layout with page as its content block.
func (s *Server) renderPage(w http.ResponseWriter, page string, data any) {
	tmpl, err := template.ParseFS(s.content,
		path.Join(config.TemplatesLocalDir, config.TemplateLayout),
		path.Join(config.TemplatesLocalDir, page),
	)
	if err != nil {
		s.logger.Error().Err(err).Str("page", page).Msg("Parsing templates failed")
		http.Error(w, config.MsgServerError, http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, config.TemplateLayout, data); err != nil {
		s.logger.Error().Err(err).Str("page", page).Msgf(config.ErrRenderPageFmt, page)
		http.Error(w, config.MsgServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set(config.HCType, config.CTypeHTML+"; charset=utf-8")
	w.Write(buf.Bytes())
}

func pageToasts(q *notify.Queue) []model.Toast {
	var out []model.Toast
	for _, t := range q.Drain() {
		out = append(out, model.Toast{Kind: string(t.Kind), Message: t.Message})
	}
	return out
}

func isHxRequest(r *http.Request) bool {
	return r.Header.Get(config.HHxRequest) != ""
}

// redirect sends the browser to target, through htmx when it asked.
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	if isHxRequest(r) {
		w.Header().Set(config.HHxRedirect, target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
