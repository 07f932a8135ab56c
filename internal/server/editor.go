package server

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"github.com/debemdeboas/devlog/internal/apiclient"
	"github.com/debemdeboas/devlog/internal/config"
	"github.com/debemdeboas/devlog/internal/editor"
	"github.com/debemdeboas/devlog/internal/model"
	"github.com/debemdeboas/devlog/internal/notify"
	"github.com/debemdeboas/devlog/internal/render"
	"github.com/debemdeboas/devlog/internal/routes"
	"github.com/debemdeboas/devlog/internal/theme"
)

const previewPlaceholder = "Start typing in the editor to see a preview here."

// session returns the edit session named by the request cookie.
func (s *Server) session(r *http.Request) (*editor.Session, bool) {
	cookie, err := r.Cookie(config.CookieEditSession)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	sess, err := s.sessions.GetSession(editor.SessionID(cookie.Value))
	if err != nil {
		return nil, false
	}
	return sess, true
}

// newSession starts a fresh edit screen, closing the one the cookie pointed
// to.
func (s *Server) newSession(w http.ResponseWriter, r *http.Request) (*editor.Session, error) {
	if old, ok := s.session(r); ok {
		s.sessions.DeleteSession(old.ID)
	}

	sess, err := s.sessions.CreateSession()
	if err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     config.CookieEditSession,
		Value:    string(sess.ID),
		Path:     routes.Dashboard,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess, nil
}

// sessionForSlug reuses the cookie's session when it is editing slug, and
// otherwise starts one and loads the post.
func (s *Server) sessionForSlug(w http.ResponseWriter, r *http.Request, slug string, reuse bool) (*editor.Session, error) {
	if reuse {
		if sess, ok := s.session(r); ok && sess.Controller.Snapshot().Slug == slug {
			return sess, nil
		}
	}

	sess, err := s.newSession(w, r)
	if err != nil {
		return nil, err
	}

	if err := sess.Controller.Load(apiContext(r), slug); err != nil && !errors.Is(err, editor.ErrStale) {
		s.logger.Debug().Err(err).Str("slug", slug).Msg("Edit screen could not load its post")
	}
	return sess, nil
}

// apiContext carries the author's forwarded cookies to credentialed API
// calls.
func apiContext(r *http.Request) context.Context {
	cookies := apiclient.ForwardCookies(r, config.AppConfig.API.ForwardCookies)
	return apiclient.WithCookies(r.Context(), cookies)
}

func (s *Server) serveEditPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	sess, err := s.sessionForSlug(w, r, slug, r.URL.Query().Has(routes.QueryResume))
	if err != nil {
		s.logger.Error().Err(err).Msg("Creating edit session failed")
		http.Error(w, config.MsgServerError, http.StatusInternalServerError)
		return
	}

	if target, ok := sess.Redirects.Take(); ok {
		redirect(w, r, target)
		return
	}

	s.renderEditor(w, r, sess)
}

func (s *Server) renderEditor(w http.ResponseWriter, r *http.Request, sess *editor.Session) {
	snap := sess.Controller.Snapshot()

	data := struct {
		*model.PageData
		editor.Snapshot
		Action      string
		PreviewURL  string
		Categories  []model.Category
		LivePreview bool
		Preview     template.HTML
	}{
		PageData:    model.NewPageData(r),
		Snapshot:    snap,
		Action:      routes.EditPostPath(url.PathEscape(snap.Slug)),
		PreviewURL:  routes.Preview,
		Categories:  model.Categories(),
		LivePreview: config.AppConfig.Editor.LivePreview,
	}
	data.Toasts = pageToasts(sess.Toasts)

	if data.LivePreview {
		data.Preview = preview(render.NewHTMLRenderer(data.SyntaxTheme), snap.Description)
	}

	w.Header().Set(config.HCacheControl, "no-store")
	s.renderPage(w, config.TemplateEditor, data)
}

// preview renders the editor text. The renderer sanitizes its output.
func preview(renderer editor.Renderer, markdown string) template.HTML {
	if markdown == "" {
		markdown = previewPlaceholder
	}
	return template.HTML(renderer.Render([]byte(markdown)))
}

func (s *Server) serveSubmitPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, err := s.sessionForSlug(w, r, slug, true)
	if err != nil {
		s.logger.Error().Err(err).Msg("Creating edit session failed")
		http.Error(w, config.MsgServerError, http.StatusInternalServerError)
		return
	}

	if target, ok := sess.Redirects.Take(); ok {
		redirect(w, r, target)
		return
	}

	ctrl := sess.Controller
	ctrl.SetTitle(r.PostFormValue("title"))
	ctrl.SetShortAns(r.PostFormValue("short_ans"))
	ctrl.SetDescription(r.PostFormValue("description"))

	if category := r.PostFormValue("category"); category != "" {
		if err := ctrl.SetCategory(category); err != nil {
			sess.Toasts.Notify(notify.Error, config.MsgUnknownCategory)
			s.respondSubmit(w, r, sess, slug)
			return
		}
	}

	if err := ctrl.Submit(apiContext(r)); errors.Is(err, editor.ErrBusy) {
		w.WriteHeader(http.StatusConflict)
		return
	}

	s.respondSubmit(w, r, sess, slug)
}

// respondSubmit hands the submit toasts to htmx directly, or sends a plain
// form post back to the edit page where they are rendered.
func (s *Server) respondSubmit(w http.ResponseWriter, r *http.Request, sess *editor.Session, slug string) {
	if !isHxRequest(r) {
		http.Redirect(w, r, routes.ResumePath(url.PathEscape(slug)), http.StatusSeeOther)
		return
	}

	if toasts := sess.Toasts.Drain(); len(toasts) > 0 {
		trigger, err := notify.HXTrigger(toasts)
		if err != nil {
			s.logger.Error().Err(err).Msg("Encoding toasts failed")
		} else {
			w.Header().Set(config.HHxTrigger, trigger)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// servePreview renders the posted editor text and keeps it as the session's
// description.
func (s *Server) servePreview(w http.ResponseWriter, r *http.Request) {
	content := r.PostFormValue("description")

	if sess, ok := s.session(r); ok {
		sess.Controller.SetDescription(content)
	}

	renderer := render.NewHTMLRenderer(theme.GetSyntaxThemeFromRequest(r))

	w.Header().Set(config.HCType, config.CTypeHTML+"; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(preview(renderer, content)))
}
