package api

import (
	"net/http"

	"github.com/spacesedan/journalbot/internal/models"
)

func handleHealth(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		modelStatus := "loaded"
		if deps.Analyzer == nil {
			modelStatus = "not loaded"
		}

		writeJSON(w, http.StatusOK, models.HealthResponse{
			Status:      "healthy",
			ModelStatus: modelStatus,
		})
	}
}

func handleAPIInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.APIInfo{
			Message:     "Daily Journal Bot API",
			Description: "An AI-powered journal bot that analyzes your day and provides friendly reflections",
			Version:     "1.0.0",
			Endpoints: map[string]string{
				"POST /journal": "Submit a journal entry for sentiment analysis",
				"GET /health":   "Check API health status",
				"GET /":         "Web interface",
			},
			Usage: "Send a POST request to /journal with JSON: {'text': 'Your journal entry here'}",
		})
	}
}
