package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iaibm/icibm-web/internal/config"
	"github.com/iaibm/icibm-web/internal/edition"
	"github.com/iaibm/icibm-web/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Addr:            ":0",
		Edition:         2025,
		BaseURL:         "https://icibm.example.org",
		LogLevel:        "info",
		ShutdownTimeout: time.Second,
	}
}

// newTestRouter builds the router the same way main does.
func newTestRouter(t *testing.T, cfg config.Config) http.Handler {
	t.Helper()
	ed, err := loadEdition(cfg)
	require.NoError(t, err)
	h, err := newRouter(cfg, ed, zap.NewNop())
	require.NoError(t, err)
	return h
}

func get(t *testing.T, h http.Handler, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthzOK(t *testing.T) {
	srv := newTestRouter(t, testConfig())
	rec := get(t, srv, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", strings.TrimSpace(rec.Body.String()))
}

func TestAllRoutesRender(t *testing.T) {
	srv := newTestRouter(t, testConfig())
	routes := map[string]string{
		"/":                "Keynote Speakers",
		"/submission":      "Submission",
		"/important-dates": "Important Dates",
		"/registration":    "Register for ICIBM 2025",
		"/program":         "Program",
		"/organization":    "Organization Committee",
		"/travel":          "Travel",
		"/sponsors":        "Sponsors",
		"/contact":         "Contact",
	}
	for path, heading := range routes {
		rec := get(t, srv, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"), path)

		doc := testutil.ParseHTML(t, rec.Body.Bytes())
		require.True(t, testutil.HasHeading(doc, heading), "%s should contain %q", path, heading)
		require.Equal(t, 1, doc.Find(`#site-nav a[aria-current="page"]`).Length(), path)
	}
}

func TestUnknownPathIs404(t *testing.T) {
	srv := newTestRouter(t, testConfig())
	rec := get(t, srv, "/keynotes", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.True(t, testutil.HasHeading(doc, "Page Not Found"))
	require.Equal(t, 1, doc.Find("#site-nav").Length())
	require.Zero(t, doc.Find(`#site-nav a[aria-current="page"]`).Length())
}

func TestTrailingSlashRedirects(t *testing.T) {
	srv := newTestRouter(t, testConfig())
	rec := get(t, srv, "/contact/", nil)
	require.Equal(t, http.StatusMovedPermanently, rec.Code)
	require.Equal(t, "/contact", rec.Header().Get("Location"))
}

func TestMenuQueryOpensMenu(t *testing.T) {
	srv := newTestRouter(t, testConfig())
	rec := get(t, srv, "/program?menu=open", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, 9, doc.Find("#site-menu a").Length())
	href, _ := doc.Find(".site-nav__toggle").Attr("href")
	require.Equal(t, "/program", href)
}

func TestNavFragmentForHTMX(t *testing.T) {
	srv := newTestRouter(t, testConfig())
	rec := get(t, srv, "/program?menu=open", map[string]string{
		"HX-Request": "true",
		"HX-Target":  "site-nav",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := strings.TrimSpace(rec.Body.String())
	require.True(t, strings.HasPrefix(body, `<nav id="site-nav"`), body)
	require.NotContains(t, body, "<footer")
	require.Contains(t, rec.Header().Values("Vary"), "HX-Request")
}

func TestAssetsServedWithCaching(t *testing.T) {
	srv := newTestRouter(t, testConfig())
	rec := get(t, srv, "/assets/css/site.css", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	rec = get(t, srv, "/assets/css/site.css", map[string]string{"If-None-Match": etag})
	require.Equal(t, http.StatusNotModified, rec.Code)
}

func TestSitemapListsRoutes(t *testing.T) {
	srv := newTestRouter(t, testConfig())
	rec := get(t, srv, "/sitemap.xml", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<loc>https://icibm.example.org/important-dates</loc>")
	require.Equal(t, 9, strings.Count(rec.Body.String(), "<url>"))
}

func TestHeadRequestsServed(t *testing.T) {
	srv := newTestRouter(t, testConfig())
	req := httptest.NewRequest(http.MethodHead, "/travel", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestEditionFileOverridesEmbedded(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "internal", "edition", "data", "2025.yaml"))
	require.NoError(t, err)
	file := filepath.Join(t.TempDir(), "edition.yaml")
	custom := strings.Replace(string(raw), "dates: August 3-5, 2025", "dates: August 10-12, 2025", 1)
	require.NoError(t, os.WriteFile(file, []byte(custom), 0o600))

	cfg := testConfig()
	cfg.EditionFile = file
	srv := newTestRouter(t, cfg)
	rec := get(t, srv, "/", nil)
	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, "August 10-12, 2025", testutil.Text(doc.Find(".topbar__dates")))
}

func TestLoadEditionUnknownYear(t *testing.T) {
	cfg := testConfig()
	cfg.Edition = 1999
	_, err := loadEdition(cfg)
	require.ErrorIs(t, err, edition.ErrUnknownEdition)
}

func TestTemplatesDirOverride(t *testing.T) {
	cfg := testConfig()
	cfg.TemplatesDir = filepath.Join("..", "..", "templates")
	cfg.Dev = true
	srv := newTestRouter(t, cfg)
	rec := get(t, srv, "/sponsors", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.True(t, testutil.HasHeading(doc, "Interested in Sponsoring?"))
}
