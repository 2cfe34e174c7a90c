package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"oncocare/internal/models/request_models"
)

func newServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", WithSessionID("tab-1"))
}

func TestGetGuidanceStampsIDAndTime(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/guidance" || r.Method != http.MethodPost {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		var req request_models.GuidanceRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.SymptomType != "nausea" || req.Severity != 2 {
			t.Errorf("request = %+v", req)
		}
		_, _ = w.Write([]byte(`{"urgencyLevel":"low","response":"Eat small meals.","recommendations":["Ginger tea","Rest"]}`))
	})
	c.now = func() time.Time { return time.Date(2024, 1, 14, 14, 15, 0, 0, time.UTC) }

	got, err := c.GetGuidance(context.Background(), request_models.GuidanceRequest{SymptomType: "nausea", Severity: 2})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got.ID, "guidance-") || got.Timestamp != "2024-01-14T14:15:00Z" {
		t.Errorf("id/timestamp = %q %q", got.ID, got.Timestamp)
	}
	if got.UrgencyLevel != "low" || len(got.Recommendations) != 2 {
		t.Errorf("guidance = %+v", got)
	}
}

func TestQuizCallsCarrySessionID(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req request_models.QuizRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.SessionID != "tab-1" {
			t.Errorf("session = %q", req.SessionID)
		}
		switch req.Action {
		case request_models.QuizActionGetQuestion:
			_, _ = w.Write([]byte(`{"question":"Q?","options":["A. x","B. y"],"correctAnswer":"A","explanation":"e"}`))
		case request_models.QuizActionCheckAnswer:
			if req.UserAnswer == nil || *req.UserAnswer != "B" {
				t.Errorf("answer = %v", req.UserAnswer)
			}
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"is_correct":false,"feedback":"No question was asked yet. Please start a new battle."}`))
		}
	})

	q, err := c.GetQuizQuestion(context.Background())
	if err != nil || q.CorrectAnswer != "A" {
		t.Fatalf("GetQuizQuestion() = %+v, %v", q, err)
	}

	_, err = c.CheckQuizAnswer(context.Background(), "B")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest || !strings.HasPrefix(apiErr.Message, "No question was asked yet") {
		t.Errorf("CheckQuizAnswer() err = %v", err)
	}
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to simplify note."}`))
	})

	_, err := c.SimplifyNote(context.Background(), "note")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 500 || apiErr.Message != "Failed to simplify note." {
		t.Errorf("err = %v", err)
	}
}

func TestTextEndpoints(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/simplify-note":
			_, _ = w.Write([]byte(`{"simplifiedText":"plain"}`))
		case "/api/chat-response":
			_, _ = w.Write([]byte(`{"aiResponse":"hello"}`))
		case "/api/mindcare/check-crisis":
			_, _ = w.Write([]byte(`{"isCrisis":true,"message":"helpline"}`))
		case "/api/mindcare/chat":
			_, _ = w.Write([]byte(`{"message":"breathe"}`))
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	if got, err := c.SimplifyNote(ctx, "x"); err != nil || got != "plain" {
		t.Errorf("SimplifyNote = %q, %v", got, err)
	}
	if got, err := c.ChatResponse(ctx, "x"); err != nil || got != "hello" {
		t.Errorf("ChatResponse = %q, %v", got, err)
	}
	if got, err := c.CheckCrisis(ctx, "x"); err != nil || !got.IsCrisis {
		t.Errorf("CheckCrisis = %+v, %v", got, err)
	}
	if got, err := c.MindcareChat(ctx, "x"); err != nil || got != "breathe" {
		t.Errorf("MindcareChat = %q, %v", got, err)
	}
}
