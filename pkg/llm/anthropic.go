package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
)

const DefaultAnthropicModel = "claude-3-5-haiku-latest"

// jsonOnlyInstruction is appended to the system prompt because the Messages
// API has no response format switch.
const jsonOnlyInstruction = "\n\nRespond with a single JSON object only. No markdown, no prose."

type AnthropicGateway struct {
	client    *anthropic.Client
	model     string
	maxTokens int64
}

func NewAnthropicGateway(apiKey, model string) *AnthropicGateway {
	if model == "" {
		model = DefaultAnthropicModel
	}
	client := anthropic.NewClient(anthropicoption.WithAPIKey(apiKey))
	return &AnthropicGateway{client: &client, model: model, maxTokens: 1024}
}

func (g *AnthropicGateway) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if err := req.validate(); err != nil {
		return "", err
	}
	model := req.Model
	if model == "" {
		model = g.model
	}
	system := req.SystemPrompt
	if req.JSONMode {
		system += jsonOnlyInstruction
	}

	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: g.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.UserPrompt)),
		},
	})
	if err != nil {
		status := 0
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		return "", newProviderError("anthropic", status, err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", emptyCompletion("anthropic")
	}
	return sb.String(), nil
}
