package main

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/iaibm/icibm-web/internal/config"
	"github.com/iaibm/icibm-web/internal/edition"
	"github.com/iaibm/icibm-web/internal/handlers"
	mw "github.com/iaibm/icibm-web/internal/middleware"
	"github.com/iaibm/icibm-web/internal/render"
	"github.com/iaibm/icibm-web/public"
	"github.com/iaibm/icibm-web/templates"
)

func newRouter(cfg config.Config, ed *edition.Edition, logger *zap.Logger) (http.Handler, error) {
	renderer, err := render.New(templateFS(cfg), render.WithDevMode(cfg.Dev))
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	site, err := handlers.New(renderer, ed, handlers.WithBaseURL(cfg.BaseURL))
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Logger(logger))
	r.Use(mw.Recover)
	r.Use(chimw.RedirectSlashes)
	r.Use(chimw.GetHead)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(public.Assets())))

	site.Mount(r)
	return r, nil
}

// templateFS serves templates from disk when a directory is configured so dev
// mode picks up edits; otherwise the embedded copy is used.
func templateFS(cfg config.Config) fs.FS {
	if cfg.TemplatesDir != "" {
		return os.DirFS(cfg.TemplatesDir)
	}
	return templates.FS()
}
