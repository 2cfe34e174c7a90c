package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"oncocare/internal/models/response_models"
	"oncocare/internal/prompts"
	"oncocare/pkg/llm"
	mem "oncocare/pkg/memcache"
	"oncocare/pkg/utils"
)

const (
	CorrectAnswerFeedback = "✅ Correct! Great job!"
	WrongAnswerFallback   = "That's a good guess, but it wasn't the correct answer. Try again next time!"
)

type QuizServiceInterface interface {
	// GetQuestion asks the model for a new question and makes it the open
	// question of sessionID.
	GetQuestion(ctx context.Context, sessionID string) (response_models.QuizQuestionResponse, error)
	// CheckAnswer grades userAnswer against the open question and closes it.
	CheckAnswer(ctx context.Context, sessionID string, userAnswer *string) (response_models.QuizAnswerResponse, error)
}

type QuizService struct {
	completer
	states mem.QuizStateStore
	ttl    time.Duration
}

func NewQuizService(gateway llm.Gateway, registry *prompts.Registry, states mem.QuizStateStore, ttl time.Duration) QuizServiceInterface {
	return &QuizService{
		completer: completer{gateway: gateway, registry: registry},
		states:    states,
		ttl:       ttl,
	}
}

func sessionKey(sessionID string) string {
	if id := strings.TrimSpace(sessionID); id != "" {
		return id
	}
	return mem.DefaultQuizKey
}

func (s *QuizService) GetQuestion(ctx context.Context, sessionID string) (response_models.QuizQuestionResponse, error) {
	key := sessionKey(sessionID)

	raw, err := s.complete(ctx, prompts.QuizQuestion, struct{}{})
	if errors.Is(err, llm.ErrEmptyCompletion) {
		s.states.Clear(key)
		return response_models.QuizQuestionResponse{}, nil
	}
	if err != nil {
		return response_models.QuizQuestionResponse{}, err
	}

	parsed := llm.ParseJSON[response_models.QuizQuestionResponse](raw)
	if !parsed.OK {
		log.Printf("[INFO] quiz question unusable for session %s: %v", key, parsed.Err)
		s.states.Clear(key)
		return response_models.QuizQuestionResponse{}, nil
	}

	q := parsed.Value
	s.states.Set(key, mem.QuizState{Question: q.Question, CorrectAnswer: q.CorrectAnswer}, s.ttl)
	return q, nil
}

func (s *QuizService) CheckAnswer(ctx context.Context, sessionID string, userAnswer *string) (response_models.QuizAnswerResponse, error) {
	key := sessionKey(sessionID)

	if _, ok := s.states.Peek(key); !ok {
		return response_models.QuizAnswerResponse{}, utils.ErrNoActiveQuestion
	}
	if userAnswer == nil || strings.TrimSpace(*userAnswer) == "" {
		return response_models.QuizAnswerResponse{}, utils.ErrAnswerRequired
	}

	state, ok := s.states.Consume(key)
	if !ok {
		return response_models.QuizAnswerResponse{}, utils.ErrNoActiveQuestion
	}

	answer := strings.TrimSpace(*userAnswer)
	if strings.EqualFold(answer, strings.TrimSpace(state.CorrectAnswer)) {
		return response_models.QuizAnswerResponse{IsCorrect: true, Feedback: CorrectAnswerFeedback}, nil
	}

	feedback, err := s.complete(ctx, prompts.QuizRationale, prompts.QuizRationaleInput{
		Question:      state.Question,
		CorrectAnswer: state.CorrectAnswer,
		UserAnswer:    answer,
	})
	feedback = strings.TrimSpace(feedback)
	if err != nil || feedback == "" {
		if err != nil {
			log.Printf("[ERROR] quiz rationale for session %s: %v", key, err)
		}
		feedback = WrongAnswerFallback
	}
	return response_models.QuizAnswerResponse{IsCorrect: false, Feedback: feedback}, nil
}
