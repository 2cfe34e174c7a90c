package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"oncocare/internal/models/request_models"
	"oncocare/internal/models/response_models"
	"oncocare/internal/services"
	"oncocare/pkg/utils"
)

const (
	SessionIDHeader = "X-Session-ID"

	quizFailureMessage = "Failed to process quiz request."
	noQuestionFeedback = "No question was asked yet. Please start a new battle."
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{quizService: quizService}
}

// Quiz godoc
// @Summary Health quiz
// @Description action=get_question returns a new question; action=check_answer grades user_answer and closes the question.
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.QuizRequest true "Quiz action"
// @Param X-Session-ID header string false "Quiz session; defaults to a shared slot"
// @Success 200 {object} response_models.QuizQuestionResponse
// @Success 200 {object} response_models.QuizAnswerResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/quiz [post]
func (q *QuizController) Quiz(c *gin.Context) {
	var req request_models.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = c.GetHeader(SessionIDHeader)
	}

	switch req.Action {
	case request_models.QuizActionGetQuestion:
		question, err := q.quizService.GetQuestion(c.Request.Context(), sessionID)
		if err != nil {
			utils.HandleServiceError(c, err, quizFailureMessage)
			return
		}
		utils.RespondJSON(c, http.StatusOK, question)

	case request_models.QuizActionCheckAnswer:
		result, err := q.quizService.CheckAnswer(c.Request.Context(), sessionID, req.UserAnswer)
		if errors.Is(err, utils.ErrNoActiveQuestion) {
			utils.RespondJSON(c, http.StatusBadRequest, response_models.QuizAnswerResponse{
				IsCorrect: false,
				Feedback:  noQuestionFeedback,
			})
			return
		}
		if err != nil {
			utils.HandleServiceError(c, err, quizFailureMessage)
			return
		}
		utils.RespondJSON(c, http.StatusOK, result)

	default:
		utils.HandleServiceError(c, utils.ErrInvalidQuizAction, quizFailureMessage)
	}
}
