package services

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"oncocare/internal/models/response_models"
	"oncocare/internal/prompts"
	"oncocare/internal/safety"
	"oncocare/pkg/llm"
	"oncocare/pkg/utils"
)

type intent struct {
	phrase string
	reply  string
}

// mindcareIntents are matched in order; the first contained phrase wins.
var mindcareIntents = []intent{
	{"breathing exercise", "Let's begin a simple box breathing exercise. Inhale for 4 seconds, hold for 4, exhale for 4, and hold for 4. I'll guide you..."},
	{"relaxing sounds", "Finding a peaceful sound can be very calming. I recommend trying soft rain sounds or ambient forest noises. You can find many free options online."},
	{"positive reflection", "What is one small success or happy moment you experienced today? It doesn't have to be big, just something that brought a smile to your face."},
	{"sleep", "Getting good sleep is vital for mental health. Try to avoid screens an hour before bed and make sure your room is dark and cool."},
}

type MindcareServiceInterface interface {
	CheckCrisis(message string) response_models.CrisisCheckResponse
	Chat(ctx context.Context, message string) (string, error)
}

type MindcareService struct {
	completer
	filter *safety.CrisisFilter
}

func NewMindcareService(gateway llm.Gateway, registry *prompts.Registry, filter *safety.CrisisFilter) MindcareServiceInterface {
	return &MindcareService{
		completer: completer{gateway: gateway, registry: registry},
		filter:    filter,
	}
}

// CheckCrisis never calls the model.
func (s *MindcareService) CheckCrisis(message string) response_models.CrisisCheckResponse {
	if s.filter.IsCrisis(message) {
		return response_models.CrisisCheckResponse{IsCrisis: true, Message: safety.HelplineMessage}
	}
	return response_models.CrisisCheckResponse{}
}

func (s *MindcareService) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", utils.ErrMessageRequired
	}

	lower := strings.ToLower(message)
	if match, ok := lo.Find(mindcareIntents, func(i intent) bool {
		return strings.Contains(lower, i.phrase)
	}); ok {
		return match.reply, nil
	}
	return s.supportReply(ctx, prompts.MindcareChat, message)
}
