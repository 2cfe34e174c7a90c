// Package client calls the OncoCare API the way the patient app does and
// adapts replies for display.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"oncocare/internal/models/domain_models"
	"oncocare/internal/models/request_models"
	"oncocare/internal/models/response_models"
)

// APIError is a non-2xx reply. Message is the server's error text when it
// sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("oncocare api: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL   string
	http      *http.Client
	sessionID string
	now       func() time.Time
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithSessionID keeps quiz questions of this client apart from other callers.
func WithSessionID(id string) Option {
	return func(c *Client) { c.sessionID = id }
}

// New returns a client for baseURL, e.g. "http://localhost:3001".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetGuidance submits a symptom and stamps the reply with a fresh id and time.
func (c *Client) GetGuidance(ctx context.Context, req request_models.GuidanceRequest) (domain_models.AIGuidance, error) {
	var out response_models.GuidanceResponse
	if err := c.post(ctx, "/api/guidance", req, &out); err != nil {
		return domain_models.AIGuidance{}, err
	}
	return domain_models.AIGuidance{
		ID:              "guidance-" + uuid.NewString(),
		Response:        out.Response,
		UrgencyLevel:    out.UrgencyLevel,
		Recommendations: out.Recommendations,
		Timestamp:       c.now().UTC().Format(time.RFC3339),
	}, nil
}

func (c *Client) SimplifyNote(ctx context.Context, originalText string) (string, error) {
	var out response_models.SimplifyNoteResponse
	err := c.post(ctx, "/api/simplify-note", request_models.SimplifyNoteRequest{OriginalText: originalText}, &out)
	return out.SimplifiedText, err
}

func (c *Client) ChatResponse(ctx context.Context, userMessage string) (string, error) {
	var out response_models.ChatResponse
	err := c.post(ctx, "/api/chat-response", request_models.ChatRequest{UserMessage: userMessage}, &out)
	return out.AIResponse, err
}

func (c *Client) GetQuizQuestion(ctx context.Context) (response_models.QuizQuestionResponse, error) {
	var out response_models.QuizQuestionResponse
	err := c.post(ctx, "/api/quiz", request_models.QuizRequest{
		Action:    request_models.QuizActionGetQuestion,
		SessionID: c.sessionID,
	}, &out)
	return out, err
}

// CheckQuizAnswer grades answer. With no open question the server replies 400
// and the error is an *APIError carrying its feedback text.
func (c *Client) CheckQuizAnswer(ctx context.Context, answer string) (response_models.QuizAnswerResponse, error) {
	var out response_models.QuizAnswerResponse
	err := c.post(ctx, "/api/quiz", request_models.QuizRequest{
		Action:     request_models.QuizActionCheckAnswer,
		UserAnswer: &answer,
		SessionID:  c.sessionID,
	}, &out)
	return out, err
}

func (c *Client) CheckCrisis(ctx context.Context, message string) (response_models.CrisisCheckResponse, error) {
	var out response_models.CrisisCheckResponse
	err := c.post(ctx, "/api/mindcare/check-crisis", request_models.MindcareRequest{Message: message}, &out)
	return out, err
}

func (c *Client) MindcareChat(ctx context.Context, message string) (string, error) {
	var out response_models.MindcareChatResponse
	err := c.post(ctx, "/api/mindcare/chat", request_models.MindcareRequest{Message: message}, &out)
	return out.Message, err
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var body struct {
		Error    string `json:"error"`
		Feedback string `json:"feedback"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	msg := body.Error
	if msg == "" {
		msg = body.Feedback
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
