package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oncocare/internal/models/request_models"
	"oncocare/internal/services"
	"oncocare/pkg/middleware"
	"oncocare/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Login godoc
// @Summary Start a demo session
// @Description Known sample users sign in as themselves; any other email gets a demo account.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, "")
		return
	}

	utils.RespondSuccess(c, session, "Login successful")
}

// Me godoc
// @Summary Current session
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/auth/me [get]
func (a *AccountController) Me(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
		return
	}
	utils.RespondSuccess(c, gin.H{
		"id":        claims.UserID,
		"name":      claims.Name,
		"email":     claims.Email,
		"role":      claims.Role,
		"patientId": claims.PatientID,
	}, "")
}
