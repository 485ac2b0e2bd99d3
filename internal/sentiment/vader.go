package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// VADERAnalyzer is a rule-based fallback backend for development runs
// without the transformer model download. Cheap to construct, no I/O.
type VADERAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVADERAnalyzer() *VADERAnalyzer {
	return &VADERAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return RemoveLinks(plainText)
}

// Analyze maps VADER's compound score in [-1,1] onto the classifier's
// binary labels, with confidence scaled into [0.5,1].
func (v *VADERAnalyzer) Analyze(text string) (Prediction, error) {
	plainText := ConvertMarkdownToText(text)

	scores := v.analyzer.PolarityScores(plainText)
	compound := scores.Compound

	label := LabelPositive
	if compound < 0 {
		label = LabelNegative
		compound = -compound
	}

	return Prediction{
		Label:      label,
		Confidence: 0.5 + compound/2,
	}, nil
}
