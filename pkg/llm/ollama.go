package llm

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

const (
	DefaultOllamaURL   = "http://localhost:11434"
	DefaultOllamaModel = "llama3.1"
)

// OllamaGateway talks to a local Ollama server through langchaingo.
type OllamaGateway struct {
	llm *ollama.LLM
}

func NewOllamaGateway(serverURL, model string) (*OllamaGateway, error) {
	if serverURL == "" {
		serverURL = DefaultOllamaURL
	}
	if model == "" {
		model = DefaultOllamaModel
	}
	llm, err := ollama.New(ollama.WithServerURL(serverURL), ollama.WithModel(model))
	if err != nil {
		return nil, err
	}
	return &OllamaGateway{llm: llm}, nil
}

func (g *OllamaGateway) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if err := req.validate(); err != nil {
		return "", err
	}

	opts := []llms.CallOption{llms.WithTemperature(0.2)}
	if req.Model != "" {
		opts = append(opts, llms.WithModel(req.Model))
	}
	if req.JSONMode {
		opts = append(opts, llms.WithJSONMode())
	}

	resp, err := g.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, req.SystemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, req.UserPrompt),
	}, opts...)
	if err != nil {
		// The client does not expose HTTP status codes; treat failures as transport errors.
		return "", newProviderError("ollama", 0, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return "", emptyCompletion("ollama")
	}
	return resp.Choices[0].Content, nil
}
