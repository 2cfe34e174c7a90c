// Package mem holds short-lived in-process state.
package mem

import (
	"sync"
	"time"
)

// DefaultQuizKey is the slot used when a caller sends no session id.
const DefaultQuizKey = "default"

// pruneThreshold triggers a sweep of expired entries on Set.
const pruneThreshold = 1000

// QuizState is the open question for one quiz session.
type QuizState struct {
	Question      string
	CorrectAnswer string
}

type QuizStateStore interface {
	// Set stores state for key, replacing any unanswered question.
	Set(key string, state QuizState, ttl time.Duration)

	// Consume returns the state for key if present and not expired, and
	// removes it (single-use).
	Consume(key string) (QuizState, bool)

	// Peek reads without consuming.
	Peek(key string) (QuizState, bool)

	Clear(key string)
}

type entry struct {
	state     QuizState
	expiresAt time.Time
}

type QuizStates struct {
	mu   sync.Mutex
	data map[string]entry
	now  func() time.Time
}

func NewQuizStates() *QuizStates {
	return &QuizStates{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *QuizStates) Set(key string, state QuizState, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.data[key] = entry{state: state, expiresAt: now.Add(ttl)}

	if len(s.data) > pruneThreshold {
		for k, e := range s.data {
			if now.After(e.expiresAt) {
				delete(s.data, k)
			}
		}
	}
}

func (s *QuizStates) Consume(key string) (QuizState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		return QuizState{}, false
	}
	delete(s.data, key) // single-use, expired or not
	if s.now().After(e.expiresAt) {
		return QuizState{}, false
	}
	return e.state, true
}

func (s *QuizStates) Peek(key string) (QuizState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok || s.now().After(e.expiresAt) {
		return QuizState{}, false
	}
	return e.state, true
}

func (s *QuizStates) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
