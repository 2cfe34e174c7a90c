package response_models

import (
	"errors"
	"strings"
)

// QuizQuestionResponse is returned for get_question. Empty fields are
// omitted so an unusable model reply renders as {}.
type QuizQuestionResponse struct {
	Question      string   `json:"question,omitempty" jsonschema:"required"`
	Options       []string `json:"options,omitempty" jsonschema:"required,description=Choices prefixed with their letter like 'A. ...'"`
	CorrectAnswer string   `json:"correctAnswer,omitempty" jsonschema:"required,description=The letter of the correct option"`
	Explanation   string   `json:"explanation,omitempty" jsonschema:"required,description=One sentence"`
}

func (q *QuizQuestionResponse) Validate() error {
	q.CorrectAnswer = strings.TrimSpace(q.CorrectAnswer)
	if strings.TrimSpace(q.Question) == "" {
		return errors.New("question is empty")
	}
	if q.CorrectAnswer == "" {
		return errors.New("correct answer is empty")
	}
	return nil
}

type QuizAnswerResponse struct {
	IsCorrect bool   `json:"is_correct"`
	Feedback  string `json:"feedback"`
}
