package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/docmeta/internal/api"
	"github.com/dgallion1/docmeta/internal/config"
	"github.com/dgallion1/docmeta/internal/document"
	"github.com/dgallion1/docmeta/internal/langdetect"
	"github.com/dgallion1/docmeta/internal/parser"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Building the detector loads the language models; do it once at startup.
	detector := langdetect.New()

	stats := parser.NewStats(cfg.StatsWindow)
	files := &parser.Files{
		PDFFallbackPdftotext: cfg.PDFFallbackPdftotext,
		OCRFallback:          cfg.OCRFallback,
		OCRMinCharsPerPage:   cfg.OCRMinCharsPerPage,
		Stats:                stats,
	}
	norm := document.NewNormalizer(files, detector, log)

	srv := api.NewServer(norm, stats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting docmeta", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
