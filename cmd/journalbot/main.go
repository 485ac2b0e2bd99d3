package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/journalbot/config"
	"github.com/spacesedan/journalbot/internal/api"
	"github.com/spacesedan/journalbot/internal/clients"
	"github.com/spacesedan/journalbot/internal/logging"
	"github.com/spacesedan/journalbot/internal/sentiment"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	analyzer, cleanup, err := buildAnalyzer()
	if err != nil {
		// Startup must abort rather than serve without a model.
		slog.Error("[Main] Failed to load sentiment analysis model",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	deps := api.Deps{
		Analyzer:  analyzer,
		StaticDir: staticDir(),
	}
	if cache := clients.InitValkey(); cache != nil {
		deps.Cache = cache
		defer clients.CloseValkey()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: api.NewRouter(deps),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("[Main] journalbot listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Info("[Main] Shutting down...")
	case err := <-errCh:
		if err != nil {
			slog.Error("[Main] Server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Graceful shutdown failed", slog.String("error", err.Error()))
	}
}

func buildAnalyzer() (sentiment.Analyzer, func(), error) {
	if os.Getenv("SENTIMENT_BACKEND") == "vader" {
		slog.Info("[Main] Using VADER sentiment backend")
		return sentiment.NewVADERAnalyzer(), func() {}, nil
	}

	analyzer, err := sentiment.NewTransformerAnalyzer()
	if err != nil {
		return nil, nil, err
	}
	return analyzer, analyzer.Close, nil
}

func staticDir() string {
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		return dir
	}
	return "./static"
}
