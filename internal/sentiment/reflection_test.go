package sentiment

import "testing"

func TestReflectionFor_Table(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		confidence float64
		wantEmoji  string
	}{
		{"positive high confidence", LabelPositive, 0.95, "😊"},
		{"positive low confidence", LabelPositive, 0.6, "🙂"},
		{"positive at threshold stays low", LabelPositive, 0.8, "🙂"},
		{"negative high confidence", LabelNegative, 0.9, "❤️"},
		{"negative low confidence", LabelNegative, 0.55, "🤗"},
		{"unknown label takes negative wording", "NEUTRAL", 0.9, "❤️"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReflectionFor(tt.label, tt.confidence)
			if got.Emoji != tt.wantEmoji {
				t.Errorf("ReflectionFor(%q, %v).Emoji = %q, want %q",
					tt.label, tt.confidence, got.Emoji, tt.wantEmoji)
			}
			if got.Message == "" {
				t.Errorf("ReflectionFor(%q, %v) returned empty message", tt.label, tt.confidence)
			}
		})
	}
}

func TestReflectionFor_Deterministic(t *testing.T) {
	first := ReflectionFor(LabelPositive, 0.92)
	second := ReflectionFor(LabelPositive, 0.92)
	if first != second {
		t.Errorf("ReflectionFor is not deterministic: %+v vs %+v", first, second)
	}
}

func TestReflectionFor_HighConfidencePositivePair(t *testing.T) {
	got := ReflectionFor(LabelPositive, 0.99)
	want := reflectionTable[reflectionKey{positive: true, highConfidence: true}]
	if got != want {
		t.Errorf("ReflectionFor(POSITIVE, 0.99) = %+v, want %+v", got, want)
	}
}
