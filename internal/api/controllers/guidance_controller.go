package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oncocare/internal/models/request_models"
	"oncocare/internal/models/response_models"
	"oncocare/internal/services"
	"oncocare/pkg/utils"
)

type GuidanceController struct {
	guidanceService services.GuidanceServiceInterface
	noteService     services.NoteServiceInterface
	chatService     services.ChatServiceInterface
}

func NewGuidanceController(
	guidanceService services.GuidanceServiceInterface,
	noteService services.NoteServiceInterface,
	chatService services.ChatServiceInterface) *GuidanceController {
	return &GuidanceController{
		guidanceService: guidanceService,
		noteService:     noteService,
		chatService:     chatService,
	}
}

// GetGuidance godoc
// @Summary Symptom guidance
// @Description Classify a logged symptom and suggest next steps. An unusable model reply yields {}.
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.GuidanceRequest true "Symptom"
// @Success 200 {object} response_models.GuidanceResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/guidance [post]
func (g *GuidanceController) GetGuidance(c *gin.Context) {
	var req request_models.GuidanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	guidance, err := g.guidanceService.GetGuidance(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to get AI guidance.")
		return
	}
	utils.RespondJSON(c, http.StatusOK, guidance)
}

// SimplifyNote godoc
// @Summary Simplify a doctor's note
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.SimplifyNoteRequest true "Note"
// @Success 200 {object} response_models.SimplifyNoteResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/simplify-note [post]
func (g *GuidanceController) SimplifyNote(c *gin.Context) {
	var req request_models.SimplifyNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	text, err := g.noteService.Simplify(c.Request.Context(), req.OriginalText)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to simplify note.")
		return
	}
	utils.RespondJSON(c, http.StatusOK, response_models.SimplifyNoteResponse{SimplifiedText: text})
}

// ChatResponse godoc
// @Summary Supportive chat reply
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Message"
// @Success 200 {object} response_models.ChatResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/chat-response [post]
func (g *GuidanceController) ChatResponse(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reply, err := g.chatService.Respond(c.Request.Context(), req.UserMessage)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to get a chat response.")
		return
	}
	utils.RespondJSON(c, http.StatusOK, response_models.ChatResponse{AIResponse: reply})
}
