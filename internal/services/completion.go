package services

import (
	"context"
	"fmt"

	"oncocare/internal/prompts"
	"oncocare/pkg/llm"
	"oncocare/pkg/utils"
)

// completer renders a capability prompt and sends it through the gateway.
type completer struct {
	gateway  llm.Gateway
	registry *prompts.Registry
}

func (c completer) complete(ctx context.Context, capability prompts.Capability, in any) (string, error) {
	p, err := c.registry.Build(capability, in)
	if err != nil {
		return "", err
	}
	text, err := c.gateway.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: p.System,
		UserPrompt:   p.User,
		JSONMode:     p.JSONMode,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", utils.ErrProviderFailure, capability, err)
	}
	return text, nil
}
