// Package llm wraps the hosted language-model providers behind a single
// completion call. Providers are interchangeable; callers only see Gateway.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// CompletionRequest is one system + user prompt exchange with a provider.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	// Model overrides the provider default when set.
	Model string
	// JSONMode asks the provider for a strictly JSON-shaped completion.
	JSONMode bool
}

func (r CompletionRequest) validate() error {
	if strings.TrimSpace(r.SystemPrompt) == "" || strings.TrimSpace(r.UserPrompt) == "" {
		return ErrInvalidPrompt
	}
	return nil
}

// Gateway returns the provider's primary completion text for a request.
type Gateway interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

var (
	ErrInvalidPrompt   = errors.New("system and user prompts must not be empty")
	ErrEmptyCompletion = errors.New("provider returned an empty completion")
)

// ProviderError reports a failed provider call.
type ProviderError struct {
	Provider   string
	StatusCode int
	Retryable  bool
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// IsRetryable reports whether err is a transient provider failure.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.Retryable
	}
	return false
}

// retryableStatus treats 429, 5xx and transport failures (status 0) as transient.
func retryableStatus(status int) bool {
	return status == 0 || status == 429 || status >= 500
}

func newProviderError(provider string, status int, err error) *ProviderError {
	retryable := !errors.Is(err, context.Canceled) && retryableStatus(status)
	return &ProviderError{Provider: provider, StatusCode: status, Retryable: retryable, Err: err}
}

func emptyCompletion(provider string) *ProviderError {
	return &ProviderError{Provider: provider, Err: ErrEmptyCompletion}
}
