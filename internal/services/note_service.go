package services

import (
	"context"
	"errors"
	"strings"

	"oncocare/internal/prompts"
	"oncocare/pkg/llm"
	"oncocare/pkg/utils"
)

// SimplifyFallback is returned when the model produced no text.
const SimplifyFallback = "Sorry, I couldn't simplify that note."

type NoteServiceInterface interface {
	Simplify(ctx context.Context, originalText string) (string, error)
}

type NoteService struct {
	completer
}

func NewNoteService(gateway llm.Gateway, registry *prompts.Registry) NoteServiceInterface {
	return &NoteService{completer{gateway: gateway, registry: registry}}
}

func (s *NoteService) Simplify(ctx context.Context, originalText string) (string, error) {
	if strings.TrimSpace(originalText) == "" {
		return "", utils.ErrNoteTextRequired
	}

	text, err := s.complete(ctx, prompts.SimplifyNote, prompts.TextInput{Text: originalText})
	if errors.Is(err, llm.ErrEmptyCompletion) {
		return SimplifyFallback, nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
