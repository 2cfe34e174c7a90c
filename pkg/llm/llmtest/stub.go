// Package llmtest provides a deterministic llm.Gateway for tests.
package llmtest

import (
	"context"
	"sync"

	"oncocare/pkg/llm"
)

// Stub answers every Complete call through Reply and records the requests.
type Stub struct {
	mu       sync.Mutex
	Reply    func(req llm.CompletionRequest) (string, error)
	requests []llm.CompletionRequest
}

// Fixed always returns text.
func Fixed(text string) *Stub {
	return &Stub{Reply: func(llm.CompletionRequest) (string, error) { return text, nil }}
}

// Failing always returns err.
func Failing(err error) *Stub {
	return &Stub{Reply: func(llm.CompletionRequest) (string, error) { return "", err }}
}

// Sequence returns texts in order, repeating the last one once exhausted.
func Sequence(texts ...string) *Stub {
	s := &Stub{}
	s.Reply = func(llm.CompletionRequest) (string, error) {
		i := len(s.requests) - 1
		if i >= len(texts) {
			i = len(texts) - 1
		}
		return texts[i], nil
	}
	return s
}

func (s *Stub) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.Reply(req)
}

func (s *Stub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Last returns the most recent request, or the zero value if none.
func (s *Stub) Last() llm.CompletionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return llm.CompletionRequest{}
	}
	return s.requests[len(s.requests)-1]
}
