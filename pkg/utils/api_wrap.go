package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const TraceIDKey = "trace_id"

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the body of every failed AI endpoint call.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// RespondSuccess wraps data in the APIResponse envelope.
func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString(TraceIDKey),
		Data:    data,
	})
}

// RespondJSON writes a bare contract body, as the AI endpoints do.
func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Error:   message,
		TraceID: c.GetString(TraceIDKey),
	})
}

// HandleServiceError maps service errors to a status and message. The
// providerMessage is shown to the caller when the language model failed.
func HandleServiceError(c *gin.Context, err error, providerMessage string) {
	traceID := c.GetString(TraceIDKey)

	switch {
	case errors.Is(err, ErrSymptomTypeRequired),
		errors.Is(err, ErrInvalidSymptomType),
		errors.Is(err, ErrNoteTextRequired),
		errors.Is(err, ErrMessageRequired),
		errors.Is(err, ErrAnswerRequired),
		errors.Is(err, ErrEmailRequired):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidQuizAction):
		RespondError(c, http.StatusBadRequest, "Invalid action.")
	case errors.Is(err, ErrNoActiveQuestion):
		RespondError(c, http.StatusBadRequest, "No question was asked yet. Please start a new battle.")
	case errors.Is(err, ErrPatientNotFound):
		RespondError(c, http.StatusNotFound, "Patient not found")
	case errors.Is(err, ErrReminderNotFound):
		RespondError(c, http.StatusNotFound, "Reminder not found")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
	case errors.Is(err, ErrProviderFailure):
		log.Printf("[ERROR] trace=%s provider error: %v", traceID, err)
		RespondError(c, http.StatusInternalServerError, providerMessage)
	default:
		log.Printf("[ERROR] trace=%s unknown error: %v", traceID, err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
