package sentiment

// Labels produced by the SST-2 classifier head.
const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
)

type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Analyzer classifies a single journal entry. Implementations are safe for
// concurrent use after construction and are shared process-wide.
type Analyzer interface {
	Analyze(text string) (Prediction, error)
}
