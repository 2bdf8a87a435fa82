package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/iaibm/icibm-web/internal/edition"
	mw "github.com/iaibm/icibm-web/internal/middleware"
	"github.com/iaibm/icibm-web/internal/nav"
	"github.com/iaibm/icibm-web/internal/observability"
	"github.com/iaibm/icibm-web/internal/render"
	"github.com/iaibm/icibm-web/internal/seo"
)

// NavTarget is the id of the navigation element swapped by htmx.
const NavTarget = "site-nav"

const (
	layoutTemplate = "base"
	navTemplate    = "nav"
)

// ErrMissingTemplate is returned by New when a required template is not defined.
var ErrMissingTemplate = errors.New("handlers: missing template")

// Site renders the conference pages of one edition.
type Site struct {
	renderer *render.Renderer
	ed       *edition.Edition
	baseURL  string
	cache    *pageCache
}

// Option configures a Site.
type Option func(*Site)

// WithBaseURL sets the absolute origin used for canonical links, JSON-LD and the sitemap.
func WithBaseURL(u string) Option {
	return func(s *Site) { s.baseURL = strings.TrimRight(strings.TrimSpace(u), "/") }
}

// New checks that every template the site needs is defined. Rendered pages are
// cached unless the renderer runs in dev mode.
func New(r *render.Renderer, ed *edition.Edition, opts ...Option) (*Site, error) {
	if r == nil {
		return nil, errors.New("handlers: renderer is required")
	}
	if ed == nil {
		return nil, errors.New("handlers: edition is required")
	}
	required := []string{layoutTemplate, navTemplate, notFoundTemplate}
	for _, rt := range Table {
		required = append(required, rt.Template)
	}
	for _, name := range required {
		if !r.Has(name) {
			return nil, fmt.Errorf("%w: %s", ErrMissingTemplate, name)
		}
	}

	s := &Site{renderer: r, ed: ed}
	for _, opt := range opts {
		opt(s)
	}
	if !r.Dev() {
		s.cache = newPageCache()
	}
	return s, nil
}

// Page is a rendered HTML document with its status code.
type Page struct {
	Status int
	Body   []byte
}

// Render produces the full document for path. Unknown paths yield the
// not-found page with status 404.
func (s *Site) Render(path string, menu nav.Menu) (Page, error) {
	path = nav.Normalize(path)
	rt, ok := Lookup(path)
	if !ok {
		body, err := s.renderNotFound(path, menu)
		if err != nil {
			return Page{}, err
		}
		return Page{Status: http.StatusNotFound, Body: body}, nil
	}

	key := pageKey{path: path, menuOpen: menu.Open}
	if body, ok := s.cache.get(key); ok {
		return Page{Status: http.StatusOK, Body: body}, nil
	}

	heading := rt.Heading(s.ed)
	content, err := s.renderer.Execute(rt.Template, Content{Edition: s.ed, Heading: heading, Path: path})
	if err != nil {
		return Page{}, err
	}
	data := s.shell(path, menu)
	data.Body = template.HTML(content)
	s.meta(&data, rt, heading)

	body, err := s.renderer.Execute(layoutTemplate, data)
	if err != nil {
		return Page{}, err
	}
	s.cache.put(key, body)
	return Page{Status: http.StatusOK, Body: body}, nil
}

// not-found pages are not cached; their paths are unbounded
func (s *Site) renderNotFound(path string, menu nav.Menu) ([]byte, error) {
	content, err := s.renderer.Execute(notFoundTemplate, Content{Edition: s.ed, Heading: notFoundHeading, Path: path})
	if err != nil {
		return nil, err
	}
	data := s.shell(path, menu)
	data.Body = template.HTML(content)
	s.notFoundMeta(&data)
	return s.renderer.Execute(layoutTemplate, data)
}

// RenderNav produces only the navigation element for path.
func (s *Site) RenderNav(path string, menu nav.Menu) ([]byte, error) {
	return s.renderer.Execute(navTemplate, s.shell(nav.Normalize(path), menu))
}

// Mount registers the content routes, the crawler endpoints and the not-found handler.
func (s *Site) Mount(r chi.Router) {
	for _, rt := range Table {
		r.Get(rt.Path, s.ServePage)
	}
	r.Get("/sitemap.xml", s.Sitemap)
	r.Get("/robots.txt", s.Robots)
	r.NotFound(s.ServePage)
}

// ServePage renders the page for the request path. htmx requests aimed at the
// navigation receive the nav fragment only.
func (s *Site) ServePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.FromContext(ctx)
	menu := nav.MenuFromQuery(r.URL.Query())

	if mw.IsHTMX(ctx) && mw.HXTarget(ctx) == NavTarget {
		body, err := s.RenderNav(r.URL.Path, menu)
		if err != nil {
			logger.Error("render nav fragment", zap.Error(err))
			mw.WriteError(w, r, http.StatusInternalServerError)
			return
		}
		writeHTML(w, http.StatusOK, body)
		return
	}

	page, err := s.Render(r.URL.Path, menu)
	if err != nil {
		logger.Error("render page", zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError)
		return
	}
	writeHTML(w, page.Status, page.Body)
}

// Sitemap lists every routed page under the base URL.
func (s *Site) Sitemap(w http.ResponseWriter, r *http.Request) {
	body, err := seo.Sitemap(s.baseURL, Paths())
	if err != nil {
		observability.FromContext(r.Context()).Error("render sitemap", zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(body)
}

// Robots allows all crawlers and points them at the sitemap.
func (s *Site) Robots(w http.ResponseWriter, _ *http.Request) {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n")
	if loc := seo.Canonical(s.baseURL, "/sitemap.xml"); loc != "" {
		b.WriteString("Sitemap: " + loc + "\n")
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
