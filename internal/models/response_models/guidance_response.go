package response_models

import (
	"errors"
	"fmt"
	"strings"
)

const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

const (
	minRecommendations = 2
	maxRecommendations = 3
)

// GuidanceResponse is the symptom guidance contract. All fields are omitted
// when empty so a fallback renders as {}.
type GuidanceResponse struct {
	UrgencyLevel    string   `json:"urgencyLevel,omitempty" jsonschema:"required,enum=low,enum=medium,enum=high"`
	Response        string   `json:"response,omitempty" jsonschema:"required,description=A brief assessment of the symptom"`
	Recommendations []string `json:"recommendations,omitempty" jsonschema:"required,minItems=2,maxItems=3,description=Short actionable recommendations"`
}

// Validate normalizes the urgency level and recommendation list in place.
func (g *GuidanceResponse) Validate() error {
	g.UrgencyLevel = strings.ToLower(strings.TrimSpace(g.UrgencyLevel))
	if !IsUrgencyLevel(g.UrgencyLevel) {
		return fmt.Errorf("unrecognized urgency level %q", g.UrgencyLevel)
	}
	if strings.TrimSpace(g.Response) == "" {
		return errors.New("response is empty")
	}

	recs := make([]string, 0, len(g.Recommendations))
	for _, r := range g.Recommendations {
		if r = strings.TrimSpace(r); r != "" {
			recs = append(recs, r)
		}
	}
	if len(recs) < minRecommendations {
		return fmt.Errorf("want at least %d recommendations, got %d", minRecommendations, len(recs))
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	g.Recommendations = recs
	return nil
}

func IsUrgencyLevel(level string) bool {
	switch level {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

type SimplifyNoteResponse struct {
	SimplifiedText string `json:"simplifiedText"`
}

type ChatResponse struct {
	AIResponse string `json:"aiResponse"`
}
