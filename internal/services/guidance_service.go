package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"oncocare/internal/models/request_models"
	"oncocare/internal/models/response_models"
	"oncocare/internal/prompts"
	"oncocare/pkg/llm"
	"oncocare/pkg/utils"
)

var symptomTypes = map[string]bool{
	"pain":      true,
	"fatigue":   true,
	"nausea":    true,
	"dizziness": true,
	"other":     true,
}

type GuidanceServiceInterface interface {
	// GetGuidance returns the zero GuidanceResponse when the model reply
	// cannot be used; only provider failures are errors.
	GetGuidance(ctx context.Context, req request_models.GuidanceRequest) (response_models.GuidanceResponse, error)
}

type GuidanceService struct {
	completer
}

func NewGuidanceService(gateway llm.Gateway, registry *prompts.Registry) GuidanceServiceInterface {
	return &GuidanceService{completer{gateway: gateway, registry: registry}}
}

func (s *GuidanceService) GetGuidance(ctx context.Context, req request_models.GuidanceRequest) (response_models.GuidanceResponse, error) {
	symptom := strings.ToLower(strings.TrimSpace(req.SymptomType))
	if symptom == "" {
		return response_models.GuidanceResponse{}, utils.ErrSymptomTypeRequired
	}
	if !symptomTypes[symptom] {
		return response_models.GuidanceResponse{}, utils.ErrInvalidSymptomType
	}

	raw, err := s.complete(ctx, prompts.Guidance, prompts.GuidanceInput{
		SymptomType: symptom,
		Severity:    req.Severity,
		Notes:       req.Notes,
	})
	if errors.Is(err, llm.ErrEmptyCompletion) {
		log.Printf("[INFO] guidance reply empty, returning empty object")
		return response_models.GuidanceResponse{}, nil
	}
	if err != nil {
		return response_models.GuidanceResponse{}, err
	}

	parsed := llm.ParseJSON[response_models.GuidanceResponse](raw)
	if !parsed.OK {
		log.Printf("[INFO] guidance reply unusable, returning empty object: %v", parsed.Err)
		return response_models.GuidanceResponse{}, nil
	}
	return parsed.Value, nil
}
