package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oncocare/internal/models/request_models"
	"oncocare/internal/models/response_models"
	"oncocare/internal/services"
	"oncocare/pkg/utils"
)

type MindcareController struct {
	mindcareService services.MindcareServiceInterface
}

func NewMindcareController(mindcareService services.MindcareServiceInterface) *MindcareController {
	return &MindcareController{mindcareService: mindcareService}
}

// CheckCrisis godoc
// @Summary Screen a message for crisis phrases
// @Tags MindCare
// @Accept json
// @Produce json
// @Param request body request_models.MindcareRequest true "Message"
// @Success 200 {object} response_models.CrisisCheckResponse
// @Router /api/mindcare/check-crisis [post]
func (m *MindcareController) CheckCrisis(c *gin.Context) {
	var req request_models.MindcareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	utils.RespondJSON(c, http.StatusOK, m.mindcareService.CheckCrisis(req.Message))
}

// Chat godoc
// @Summary MindCare companion reply
// @Tags MindCare
// @Accept json
// @Produce json
// @Param request body request_models.MindcareRequest true "Message"
// @Success 200 {object} response_models.MindcareChatResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/mindcare/chat [post]
func (m *MindcareController) Chat(c *gin.Context) {
	var req request_models.MindcareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reply, err := m.mindcareService.Chat(c.Request.Context(), req.Message)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to get a chat response.")
		return
	}
	utils.RespondJSON(c, http.StatusOK, response_models.MindcareChatResponse{Message: reply})
}
