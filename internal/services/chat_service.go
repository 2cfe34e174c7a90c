package services

import (
	"context"
	"errors"
	"strings"

	"oncocare/internal/prompts"
	"oncocare/pkg/llm"
	"oncocare/pkg/utils"
)

// ChatFallback is returned by both support chats when the model produced no text.
const ChatFallback = "I'm sorry, I couldn't generate a response. Please try again."

type ChatServiceInterface interface {
	Respond(ctx context.Context, userMessage string) (string, error)
}

type ChatService struct {
	completer
}

func NewChatService(gateway llm.Gateway, registry *prompts.Registry) ChatServiceInterface {
	return &ChatService{completer{gateway: gateway, registry: registry}}
}

func (s *ChatService) Respond(ctx context.Context, userMessage string) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", utils.ErrMessageRequired
	}
	return s.supportReply(ctx, prompts.Chat, userMessage)
}

func (c completer) supportReply(ctx context.Context, capability prompts.Capability, message string) (string, error) {
	text, err := c.complete(ctx, capability, prompts.TextInput{Text: message})
	if errors.Is(err, llm.ErrEmptyCompletion) {
		return ChatFallback, nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
