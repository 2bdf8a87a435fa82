package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/iaibm/icibm-web/internal/config"
	"github.com/iaibm/icibm-web/internal/edition"
	"github.com/iaibm/icibm-web/internal/observability"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(2)
	}

	baseLogger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()
	logger := baseLogger.Named("web")

	ed, err := loadEdition(cfg)
	if err != nil {
		logger.Fatal("failed to load edition", zap.Error(err))
	}

	handler, err := newRouter(cfg, ed, logger.Named("http"))
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("icibm web listening",
			zap.Int("edition", ed.Year),
			zap.Bool("dev", cfg.Dev),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// loadEdition prefers an explicit edition file over the embedded data.
func loadEdition(cfg config.Config) (*edition.Edition, error) {
	if cfg.EditionFile != "" {
		ed, err := edition.LoadFile(cfg.EditionFile)
		if err != nil {
			return nil, fmt.Errorf("edition file %s: %w", cfg.EditionFile, err)
		}
		return ed, nil
	}
	ed, err := edition.Load(cfg.Edition)
	if err != nil {
		return nil, fmt.Errorf("edition %d: %w", cfg.Edition, err)
	}
	return ed, nil
}
