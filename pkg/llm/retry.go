package llm

import (
	"context"
	"log"
	"time"
)

// RetryPolicy bounds how long a single Complete call may take overall.
type RetryPolicy struct {
	MaxAttempts int
	// Backoff is the wait before the second attempt; it doubles afterwards.
	Backoff time.Duration
	// Timeout applies to each attempt. Zero means no per-attempt deadline.
	Timeout time.Duration
}

// RetryingGateway retries transient provider failures with exponential backoff.
type RetryingGateway struct {
	next   Gateway
	policy RetryPolicy
	sleep  func(ctx context.Context, d time.Duration) error
}

func WithRetry(next Gateway, policy RetryPolicy) *RetryingGateway {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &RetryingGateway{next: next, policy: policy, sleep: sleepContext}
}

func (g *RetryingGateway) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	var lastErr error
	backoff := g.policy.Backoff

	for attempt := 1; attempt <= g.policy.MaxAttempts; attempt++ {
		text, err := g.attempt(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if attempt == g.policy.MaxAttempts || !IsRetryable(err) || ctx.Err() != nil {
			break
		}
		log.Printf("[INFO] LLM attempt %d/%d failed, retrying in %s: %v", attempt, g.policy.MaxAttempts, backoff, err)
		if err := g.sleep(ctx, backoff); err != nil {
			break
		}
		backoff *= 2
	}
	return "", lastErr
}

func (g *RetryingGateway) attempt(ctx context.Context, req CompletionRequest) (string, error) {
	if g.policy.Timeout <= 0 {
		return g.next.Complete(ctx, req)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, g.policy.Timeout)
	defer cancel()
	return g.next.Complete(attemptCtx, req)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
