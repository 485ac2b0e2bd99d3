package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spacesedan/journalbot/internal/models"
	"github.com/spacesedan/journalbot/internal/sentiment"
)

const maxEntryLength = 1000

const (
	msgInvalidBody   = "Invalid request body."
	msgEmptyEntry    = "Journal entry cannot be empty."
	msgEntryTooLong  = "Journal entry is too long. Please keep it under 1000 characters."
	msgAnalysisError = "An error occurred while analyzing your journal entry. Please try again."
)

func handleJournal(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry models.JournalEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if strings.TrimSpace(entry.Text) == "" {
			writeError(w, http.StatusBadRequest, msgEmptyEntry)
			return
		}

		if utf8.RuneCountInString(entry.Text) > maxEntryLength {
			writeError(w, http.StatusBadRequest, msgEntryTooLong)
			return
		}

		slog.Info("[JournalHandler] Analyzing journal entry",
			entryPreview(entry.Text))
		start := time.Now()

		pred, cached := lookupCached(deps, r, entry.Text)
		if !cached {
			var err error
			pred, err = deps.Analyzer.Analyze(entry.Text)
			if err != nil {
				slog.Error("[JournalHandler] Sentiment analysis failed",
					slog.String("error", err.Error()))
				writeError(w, http.StatusInternalServerError, msgAnalysisError)
				return
			}

			if deps.Cache != nil {
				if err := deps.Cache.CachePrediction(r.Context(), entry.Text, pred); err != nil {
					slog.Warn("[JournalHandler] Failed to cache prediction",
						slog.String("error", err.Error()))
				}
			}
		}

		reflection := sentiment.ReflectionFor(pred.Label, pred.Confidence)

		slog.Info("[JournalHandler] Analysis complete",
			slog.String("sentiment", pred.Label),
			slog.Float64("confidence", pred.Confidence),
			slog.Bool("cached", cached),
			slog.Duration("elapsed", time.Since(start)))

		writeJSON(w, http.StatusOK, models.JournalResponse{
			Sentiment:  pred.Label,
			Confidence: pred.Confidence,
			Reflection: reflection.Message,
			Emoji:      reflection.Emoji,
		})
	}
}

func lookupCached(deps Deps, r *http.Request, text string) (sentiment.Prediction, bool) {
	if deps.Cache == nil {
		return sentiment.Prediction{}, false
	}
	return deps.Cache.GetCachedPrediction(r.Context(), text)
}

func entryPreview(text string) slog.Attr {
	if len(text) > 50 {
		end := 50
		for end > 0 && !utf8.RuneStart(text[end]) {
			end--
		}
		text = text[:end]
	}
	return slog.String("preview", text)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("[JournalHandler] Failed to encode response",
			slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorResponse{Detail: detail})
}
