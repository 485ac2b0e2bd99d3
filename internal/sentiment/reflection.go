package sentiment

// Confidence above this threshold selects the stronger reflection wording.
const HighConfidenceThreshold = 0.8

type Reflection struct {
	Message string
	Emoji   string
}

type reflectionKey struct {
	positive       bool
	highConfidence bool
}

var reflectionTable = map[reflectionKey]Reflection{
	{positive: true, highConfidence: true}: {
		Message: "What a wonderful day you've had! Your positive energy really shines through ✨",
		Emoji:   "😊",
	},
	{positive: true, highConfidence: false}: {
		Message: "There's definitely some positivity in your day! Hold onto those bright moments 🌤️",
		Emoji:   "🙂",
	},
	{positive: false, highConfidence: true}: {
		Message: "Sounds like a tough day — be kind to yourself ❤️",
		Emoji:   "❤️",
	},
	{positive: false, highConfidence: false}: {
		Message: "It seems like you're having a mixed day. That's completely normal 🌈",
		Emoji:   "🤗",
	},
}

// ReflectionFor maps a prediction onto one of four fixed reflections.
// Labels other than POSITIVE take the negative wording.
func ReflectionFor(label string, confidence float64) Reflection {
	return reflectionTable[reflectionKey{
		positive:       label == LabelPositive,
		highConfidence: confidence > HighConfidenceThreshold,
	}]
}
