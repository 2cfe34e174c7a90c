package utils

import "errors"

// Input errors (4xx).
var (
	ErrSymptomTypeRequired = errors.New("symptomType is required")
	ErrInvalidSymptomType  = errors.New("symptomType must be one of pain, fatigue, nausea, dizziness, other")
	ErrNoteTextRequired    = errors.New("originalText is required")
	ErrMessageRequired     = errors.New("message is required")
	ErrAnswerRequired      = errors.New("user_answer is required")
	ErrInvalidQuizAction   = errors.New("invalid quiz action")
	ErrNoActiveQuestion    = errors.New("no active quiz question")
	ErrEmailRequired       = errors.New("email is required")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrReminderNotFound    = errors.New("reminder not found")
	ErrForbidden           = errors.New("forbidden")
)

// ErrProviderFailure wraps every failed language-model call.
var ErrProviderFailure = errors.New("language model provider failure")
