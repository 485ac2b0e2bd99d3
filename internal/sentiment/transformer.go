package sentiment

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
)

const (
	defaultModelDir = "./models"
	hfModelName     = "KnightsAnalytics/distilbert-base-uncased-finetuned-sst-2-english"
)

// TransformerAnalyzer runs the DistilBERT SST-2 classifier in-process
// through a hugot ONNX Runtime session. Constructed once at startup; the
// session and pipeline are read-only afterwards.
type TransformerAnalyzer struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

// NewTransformerAnalyzer downloads the model on first start and builds the
// classification pipeline. Any failure here is fatal to the caller.
func NewTransformerAnalyzer() (*TransformerAnalyzer, error) {
	modelDir := os.Getenv("MODEL_DIR")
	if modelDir == "" {
		modelDir = defaultModelDir
	}

	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create model directory: %w", err)
	}

	modelPath := filepath.Join(modelDir, strings.ReplaceAll(hfModelName, "/", "_"))
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		slog.Info("[TransformerAnalyzer] Model not found, downloading...",
			slog.String("model", hfModelName))
		start := time.Now()
		downloaded, err := hugot.DownloadModel(hfModelName, modelDir, hugot.NewDownloadOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to download model: %w", err)
		}
		modelPath = downloaded
		slog.Info("[TransformerAnalyzer] Model downloaded successfully",
			slog.String("path", modelPath),
			slog.Duration("elapsed", time.Since(start)))
	} else {
		slog.Info("[TransformerAnalyzer] Using existing model", slog.String("path", modelPath))
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "journalSentimentPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize sentiment pipeline: %w", err)
	}

	slog.Info("[TransformerAnalyzer] Sentiment analysis model loaded successfully")
	return &TransformerAnalyzer{session: session, pipeline: pipeline}, nil
}

// Analyze classifies a single entry and returns the top-scoring label.
func (a *TransformerAnalyzer) Analyze(text string) (Prediction, error) {
	output, err := a.pipeline.RunPipeline([]string{text})
	if err != nil {
		return Prediction{}, fmt.Errorf("sentiment inference failed: %w", err)
	}

	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		return Prediction{}, fmt.Errorf("sentiment pipeline returned no predictions")
	}

	best := output.ClassificationOutputs[0][0]
	for _, candidate := range output.ClassificationOutputs[0][1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}

	return Prediction{
		Label:      best.Label,
		Confidence: float64(best.Score),
	}, nil
}

// Close tears down the ONNX Runtime session.
func (a *TransformerAnalyzer) Close() {
	a.session.Destroy()
}
