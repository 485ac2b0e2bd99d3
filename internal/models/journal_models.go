package models

type JournalEntry struct {
	Text string `json:"text"`
}

type JournalResponse struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Reflection string  `json:"reflection"`
	Emoji      string  `json:"emoji"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	ModelStatus string `json:"model_status"`
}

type APIInfo struct {
	Message     string            `json:"message"`
	Description string            `json:"description"`
	Version     string            `json:"version"`
	Endpoints   map[string]string `json:"endpoints"`
	Usage       string            `json:"usage"`
}
