package request_models

const (
	QuizActionGetQuestion = "get_question"
	QuizActionCheckAnswer = "check_answer"
)

type QuizRequest struct {
	Action string `json:"action"`
	// UserAnswer is a pointer so a missing field can be told apart from "".
	UserAnswer *string `json:"user_answer,omitempty"`
	SessionID  string  `json:"session_id,omitempty"`
}
