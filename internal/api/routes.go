package api

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/spacesedan/journalbot/internal/sentiment"
)

// PredictionCache abstracts the optional result cache for the API layer.
type PredictionCache interface {
	GetCachedPrediction(ctx context.Context, text string) (sentiment.Prediction, bool)
	CachePrediction(ctx context.Context, text string, pred sentiment.Prediction) error
}

type Deps struct {
	Analyzer  sentiment.Analyzer
	Cache     PredictionCache // optional; nil disables result caching
	StaticDir string
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/journal", handleJournal(deps))
	r.Get("/health", handleHealth(deps))
	r.Get("/api", handleAPIInfo())

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, filepath.Join(deps.StaticDir, "index.html"))
	})
	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir(deps.StaticDir))))

	return r
}
