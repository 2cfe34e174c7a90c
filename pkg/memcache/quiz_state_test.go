package mem

import (
	"sync"
	"testing"
	"time"
)

func TestQuizStatesConsumeIsSingleUse(t *testing.T) {
	s := NewQuizStates()
	s.Set("alice", QuizState{Question: "Q1", CorrectAnswer: "B"}, time.Minute)

	got, ok := s.Consume("alice")
	if !ok || got.CorrectAnswer != "B" {
		t.Fatalf("Consume() = %+v, %v; want B, true", got, ok)
	}
	if _, ok := s.Consume("alice"); ok {
		t.Error("second Consume() should find nothing")
	}
}

func TestQuizStatesOverwriteAndIsolation(t *testing.T) {
	s := NewQuizStates()
	s.Set("alice", QuizState{Question: "Q1", CorrectAnswer: "A"}, time.Minute)
	s.Set("alice", QuizState{Question: "Q2", CorrectAnswer: "C"}, time.Minute)
	s.Set("bob", QuizState{Question: "Q3", CorrectAnswer: "D"}, time.Minute)

	if got, _ := s.Peek("alice"); got.Question != "Q2" {
		t.Errorf("alice question = %q, want Q2", got.Question)
	}
	if got, _ := s.Consume("bob"); got.CorrectAnswer != "D" {
		t.Errorf("bob answer = %q, want D", got.CorrectAnswer)
	}
	if _, ok := s.Peek("alice"); !ok {
		t.Error("consuming bob must not touch alice")
	}
}

func TestQuizStatesExpiry(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	s := NewQuizStates()
	s.now = func() time.Time { return now }

	s.Set("k", QuizState{Question: "Q", CorrectAnswer: "A"}, time.Minute)
	now = now.Add(2 * time.Minute)

	if _, ok := s.Peek("k"); ok {
		t.Error("Peek() should not return expired state")
	}
	if _, ok := s.Consume("k"); ok {
		t.Error("Consume() should not return expired state")
	}
}

func TestQuizStatesClear(t *testing.T) {
	s := NewQuizStates()
	s.Set("k", QuizState{Question: "Q", CorrectAnswer: "A"}, time.Minute)
	s.Clear("k")
	if _, ok := s.Peek("k"); ok {
		t.Error("Clear() should remove the state")
	}
}

func TestQuizStatesConcurrentConsume(t *testing.T) {
	s := NewQuizStates()
	s.Set(DefaultQuizKey, QuizState{Question: "Q", CorrectAnswer: "A"}, time.Minute)

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := s.Consume(DefaultQuizKey); ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("%d goroutines consumed the slot, want exactly 1", wins)
	}
}
