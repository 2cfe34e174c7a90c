package request_models

type GuidanceRequest struct {
	SymptomType string `json:"symptomType"`
	// Severity is expected on a 1-5 scale but forwarded verbatim.
	Severity int    `json:"severity"`
	Notes    string `json:"notes"`
}

type SimplifyNoteRequest struct {
	OriginalText string `json:"originalText"`
}

type ChatRequest struct {
	UserMessage string `json:"userMessage"`
}
