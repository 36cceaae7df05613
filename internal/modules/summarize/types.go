package summarize

// Request is the body of a summarize call. Text is the raw transcript; the
// three knobs are optional and fall back to brief/paragraph/professional.
type Request struct {
	Text        string `json:"text" binding:"required"`
	SummaryType string `json:"summary_type"`
	Style       string `json:"style"`
	Tonality    string `json:"tonality"`
}

// Response echoes the knobs that produced the summary so clients can persist
// them alongside it.
type Response struct {
	Summary     string `json:"summary"`
	SummaryType string `json:"summary_type"`
	Style       string `json:"style"`
	Tonality    string `json:"tonality"`
}
