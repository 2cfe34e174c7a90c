package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"oncocare/internal/api/controllers"
	"oncocare/internal/config"
	"oncocare/internal/prompts"
	"oncocare/internal/repositories"
	"oncocare/internal/safety"
	"oncocare/internal/services"
	"oncocare/pkg/llm"
	"oncocare/pkg/llm/llmtest"
	mem "oncocare/pkg/memcache"
	"oncocare/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	engine *gin.Engine
	stub   *llmtest.Stub
	tokens *utils.TokenManager
}

func newTestServer(t *testing.T, stub *llmtest.Stub) *testServer {
	t.Helper()
	return newTestServerWithConfig(t, stub, &config.Config{Port: "0", JWTSecret: "test"})
}

func newTestServerWithConfig(t *testing.T, stub *llmtest.Stub, cfg *config.Config) *testServer {
	t.Helper()
	registry, err := prompts.NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	tokens := utils.NewTokenManager(cfg.JWTSecret, time.Hour)

	p := RouterParams{
		Config: cfg,
		Tokens: tokens,
		Guidance: controllers.NewGuidanceController(
			services.NewGuidanceService(stub, registry),
			services.NewNoteService(stub, registry),
			services.NewChatService(stub, registry)),
		Quiz:     controllers.NewQuizController(services.NewQuizService(stub, registry, mem.NewQuizStates(), time.Minute)),
		Mindcare: controllers.NewMindcareController(services.NewMindcareService(stub, registry, safety.NewCrisisFilter(safety.CrisisKeywords))),
		Account:  controllers.NewAccountController(services.NewAccountService(repositories.NewAccountRepository(), tokens)),
		Board:    controllers.NewDashboardController(services.NewDashboardService(repositories.NewPatientRepository(), repositories.NewReminderRepository())),
	}
	return &testServer{engine: NewRouter(p), stub: stub, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path string, body any, header http.Header) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("%s %s: body %q is not a JSON object: %v", method, path, w.Body.String(), err)
		}
	}
	return w, out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, llmtest.Fixed(""))
	w, body := s.do(t, http.MethodGet, "/health", nil, nil)
	if w.Code != http.StatusOK || body["status"] != "ok" {
		t.Errorf("health = %d %v", w.Code, body)
	}
	if w.Header().Get("X-Trace-ID") == "" {
		t.Error("missing trace id header")
	}
}

func TestGuidanceEndpoints(t *testing.T) {
	s := newTestServer(t, llmtest.Fixed("```json\n{\"urgencyLevel\":\"high\",\"response\":\"Call your doctor.\",\"recommendations\":[\"Sit down\",\"Drink water\"]}\n```"))

	for _, path := range []string{"/api/guidance", "/api/get-ai-guidance"} {
		w, body := s.do(t, http.MethodPost, path, map[string]any{"symptomType": "dizziness", "severity": 4, "notes": "lightheaded"}, nil)
		if w.Code != http.StatusOK || body["urgencyLevel"] != "high" {
			t.Errorf("%s = %d %v", path, w.Code, body)
		}
		if recs, _ := body["recommendations"].([]any); len(recs) != 2 {
			t.Errorf("%s recommendations = %v", path, body["recommendations"])
		}
	}

	w, body := s.do(t, http.MethodPost, "/api/guidance", map[string]any{"symptomType": "itch", "severity": 2}, nil)
	if w.Code != http.StatusBadRequest || body["error"] == "" {
		t.Errorf("invalid symptom = %d %v", w.Code, body)
	}
}

func TestGuidanceMalformedJSONReturnsEmptyObject(t *testing.T) {
	s := newTestServer(t, llmtest.Fixed("I think you should rest."))
	w, body := s.do(t, http.MethodPost, "/api/guidance", map[string]any{"symptomType": "fatigue", "severity": 1}, nil)
	if w.Code != http.StatusOK || len(body) != 0 {
		t.Errorf("malformed = %d %v, want 200 {}", w.Code, body)
	}
}

func TestProviderFailureIsGeneric500(t *testing.T) {
	s := newTestServer(t, llmtest.Failing(&llm.ProviderError{Provider: "groq", StatusCode: 401, Err: errSecret}))

	cases := map[string]struct {
		body map[string]any
		want string
	}{
		"/api/guidance":      {map[string]any{"symptomType": "pain", "severity": 3}, "Failed to get AI guidance."},
		"/api/simplify-note": {map[string]any{"originalText": "PO QD"}, "Failed to simplify note."},
		"/api/chat-response": {map[string]any{"userMessage": "hi"}, "Failed to get a chat response."},
		"/api/quiz":          {map[string]any{"action": "get_question"}, "Failed to process quiz request."},
		"/api/mindcare/chat": {map[string]any{"message": "hello"}, "Failed to get a chat response."},
	}
	for path, tc := range cases {
		w, body := s.do(t, http.MethodPost, path, tc.body, nil)
		if w.Code != http.StatusInternalServerError || body["error"] != tc.want {
			t.Errorf("%s = %d %v", path, w.Code, body)
		}
		if strings.Contains(w.Body.String(), errSecret.Error()) {
			t.Errorf("%s leaked provider detail", path)
		}
	}
}

type secretErr struct{}

func (secretErr) Error() string { return "invalid api key sk-live-123" }

var errSecret = secretErr{}

func TestSimplifyAndChat(t *testing.T) {
	s := newTestServer(t, llmtest.Fixed("Plain words."))

	w, body := s.do(t, http.MethodPost, "/api/simplify-note", map[string]any{"originalText": "Administer PO BID"}, nil)
	if w.Code != http.StatusOK || body["simplifiedText"] != "Plain words." {
		t.Errorf("simplify = %d %v", w.Code, body)
	}
	w, body = s.do(t, http.MethodPost, "/api/chat-response", map[string]any{"userMessage": "hello"}, nil)
	if w.Code != http.StatusOK || body["aiResponse"] != "Plain words." {
		t.Errorf("chat = %d %v", w.Code, body)
	}
	w, _ = s.do(t, http.MethodPost, "/api/simplify-note", map[string]any{}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty note = %d", w.Code)
	}
}

const quizJSON = `{"question":"Which helps fatigue?","options":["A. Short walks","B. Skipping meals"],"correctAnswer":"A","explanation":"Light activity boosts energy."}`

func TestQuizRoundTrip(t *testing.T) {
	s := newTestServer(t, llmtest.Fixed(quizJSON))

	w, body := s.do(t, http.MethodPost, "/api/quiz", map[string]any{"action": "get_question"}, nil)
	if w.Code != http.StatusOK || body["correctAnswer"] != "A" {
		t.Fatalf("get_question = %d %v", w.Code, body)
	}

	w, body = s.do(t, http.MethodPost, "/api/quiz", map[string]any{"action": "check_answer", "user_answer": " a "}, nil)
	if w.Code != http.StatusOK || body["is_correct"] != true || body["feedback"] != "✅ Correct! Great job!" {
		t.Errorf("check_answer = %d %v", w.Code, body)
	}
	if s.stub.Calls() != 1 {
		t.Errorf("model calls = %d, want 1", s.stub.Calls())
	}

	w, body = s.do(t, http.MethodPost, "/api/quiz", map[string]any{"action": "check_answer", "user_answer": "A"}, nil)
	if w.Code != http.StatusBadRequest || body["is_correct"] != false || body["feedback"] != "No question was asked yet. Please start a new battle." {
		t.Errorf("second check_answer = %d %v", w.Code, body)
	}
}

func TestQuizSessionHeaderAndInvalidAction(t *testing.T) {
	s := newTestServer(t, llmtest.Fixed(quizJSON))
	alice := http.Header{"X-Session-Id": {"alice"}}

	if w, _ := s.do(t, http.MethodPost, "/api/quiz", map[string]any{"action": "get_question"}, alice); w.Code != http.StatusOK {
		t.Fatalf("get_question = %d", w.Code)
	}
	if w, _ := s.do(t, http.MethodPost, "/api/quiz", map[string]any{"action": "check_answer", "user_answer": "A"}, nil); w.Code != http.StatusBadRequest {
		t.Errorf("default slot should be empty, got %d", w.Code)
	}
	if w, body := s.do(t, http.MethodPost, "/api/quiz", map[string]any{"action": "check_answer", "user_answer": "A", "session_id": "alice"}, nil); body["is_correct"] != true {
		t.Errorf("alice = %d %v", w.Code, body)
	}

	w, body := s.do(t, http.MethodPost, "/api/quiz", map[string]any{"action": "dance"}, nil)
	if w.Code != http.StatusBadRequest || body["error"] != "Invalid action." {
		t.Errorf("invalid action = %d %v", w.Code, body)
	}
}

func TestMindcareEndpoints(t *testing.T) {
	s := newTestServer(t, llmtest.Fixed("I'm here for you."))

	_, body := s.do(t, http.MethodPost, "/api/mindcare/check-crisis", map[string]any{"message": "I want to kill myself"}, nil)
	if body["isCrisis"] != true || body["message"] != safety.HelplineMessage {
		t.Errorf("crisis = %v", body)
	}
	_, body = s.do(t, http.MethodPost, "/api/mindcare/check-crisis", map[string]any{"message": "I had a great day"}, nil)
	if body["isCrisis"] != false || body["message"] != "" {
		t.Errorf("calm = %v", body)
	}

	_, body = s.do(t, http.MethodPost, "/api/mindcare/chat", map[string]any{"message": "Guide me through a breathing exercise"}, nil)
	if msg, _ := body["message"].(string); !strings.HasPrefix(msg, "Let's begin a simple box breathing exercise") {
		t.Errorf("breathing = %v", body)
	}
	if s.stub.Calls() != 0 {
		t.Errorf("model calls = %d, want 0", s.stub.Calls())
	}

	_, body = s.do(t, http.MethodPost, "/api/mindcare/chat", map[string]any{"message": "I feel low"}, nil)
	if body["message"] != "I'm here for you." || s.stub.Calls() != 1 {
		t.Errorf("fallthrough = %v, calls %d", body, s.stub.Calls())
	}
}

func login(t *testing.T, s *testServer, email string) http.Header {
	t.Helper()
	w, body := s.do(t, http.MethodPost, "/api/auth/login", map[string]any{"email": email}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login %s = %d %v", email, w.Code, body)
	}
	data, _ := body["data"].(map[string]any)
	token, _ := data["token"].(string)
	return http.Header{"Authorization": {"Bearer " + token}}
}

func TestAuthAndDashboard(t *testing.T) {
	s := newTestServer(t, llmtest.Fixed(""))
	janeH := login(t, s, "jane.doe@email.com")
	drH := login(t, s, "dr.johnson@clinic.com")

	_, body := s.do(t, http.MethodGet, "/api/auth/me", nil, janeH)
	if data, _ := body["data"].(map[string]any); data["patientId"] != "patient-1" {
		t.Errorf("me = %v", body)
	}
	if w, _ := s.do(t, http.MethodGet, "/api/auth/me", nil, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous me = %d", w.Code)
	}

	if w, _ := s.do(t, http.MethodGet, "/api/clinician/dashboard", nil, janeH); w.Code != http.StatusForbidden {
		t.Errorf("patient dashboard = %d", w.Code)
	}
	w, body := s.do(t, http.MethodGet, "/api/clinician/dashboard", nil, drH)
	data, _ := body["data"].(map[string]any)
	if w.Code != http.StatusOK || data["totalPatients"] != float64(1) || data["highUrgencySymptoms"] != float64(1) {
		t.Errorf("dashboard = %d %v", w.Code, body)
	}

	if w, _ := s.do(t, http.MethodGet, "/api/patients/patient-1/symptoms", nil, janeH); w.Code != http.StatusOK {
		t.Errorf("own symptoms = %d", w.Code)
	}
	if w, _ := s.do(t, http.MethodGet, "/api/patients/patient-404/notes", nil, drH); w.Code != http.StatusNotFound {
		t.Errorf("unknown patient = %d", w.Code)
	}
	demoH := login(t, s, "new.person@example.com")
	if w, _ := s.do(t, http.MethodGet, "/api/patients/patient-1/reminders", nil, demoH); w.Code != http.StatusForbidden {
		t.Errorf("other patient = %d", w.Code)
	}

	w, body = s.do(t, http.MethodPatch, "/api/patients/patient-1/reminders/reminder-2/toggle", nil, janeH)
	data, _ = body["data"].(map[string]any)
	if w.Code != http.StatusOK || data["isCompleted"] != false {
		t.Errorf("toggle = %d %v", w.Code, body)
	}
}

func TestCrisisCheckBypassesRateLimit(t *testing.T) {
	cfg := &config.Config{Port: "0", JWTSecret: "test", RateLimit: config.RateLimitConfig{RPS: 0.001, Burst: 1}}
	s := newTestServerWithConfig(t, llmtest.Fixed("Rest well."), cfg)

	if w, _ := s.do(t, http.MethodPost, "/api/chat-response", map[string]any{"userMessage": "hi"}, nil); w.Code != http.StatusOK {
		t.Fatalf("first chat = %d", w.Code)
	}
	if w, _ := s.do(t, http.MethodPost, "/api/mindcare/chat", map[string]any{"message": "hello"}, nil); w.Code != http.StatusTooManyRequests {
		t.Errorf("mindcare chat over burst = %d, want 429", w.Code)
	}
	for i := 0; i < 3; i++ {
		w, body := s.do(t, http.MethodPost, "/api/mindcare/check-crisis", map[string]any{"message": "I feel hopeless"}, nil)
		if w.Code != http.StatusOK || body["isCrisis"] != true {
			t.Errorf("check-crisis #%d = %d %v", i, w.Code, body)
		}
	}
}
