package controllers

import (
	"github.com/gin-gonic/gin"

	"oncocare/internal/services"
	"oncocare/pkg/middleware"
	"oncocare/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Clinician dashboard
// @Description Patient counts, urgency totals and a per-patient overview built from sample data.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/clinician/dashboard [get]
func (d *DashboardController) GetDashboard(c *gin.Context) {
	overview, err := d.dashboardService.Overview(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err, "")
		return
	}
	utils.RespondSuccess(c, overview, "")
}

// GetSymptoms godoc
// @Summary Symptom history, newest first
// @Tags Patients
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/patients/{id}/symptoms [get]
func (d *DashboardController) GetSymptoms(c *gin.Context) {
	symptoms, err := d.dashboardService.Symptoms(c.Request.Context(), viewer(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err, "")
		return
	}
	utils.RespondSuccess(c, symptoms, "")
}

// GetReminders godoc
// @Summary Medication reminders
// @Tags Patients
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/patients/{id}/reminders [get]
func (d *DashboardController) GetReminders(c *gin.Context) {
	reminders, err := d.dashboardService.Reminders(c.Request.Context(), viewer(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err, "")
		return
	}
	utils.RespondSuccess(c, reminders, "")
}

// GetNotes godoc
// @Summary Doctor's notes
// @Tags Patients
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/patients/{id}/notes [get]
func (d *DashboardController) GetNotes(c *gin.Context) {
	notes, err := d.dashboardService.Notes(c.Request.Context(), viewer(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err, "")
		return
	}
	utils.RespondSuccess(c, notes, "")
}

// ToggleReminder godoc
// @Summary Mark a reminder taken or not taken
// @Tags Patients
// @Produce json
// @Param id path string true "Patient ID"
// @Param reminderId path string true "Reminder ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/patients/{id}/reminders/{reminderId}/toggle [patch]
func (d *DashboardController) ToggleReminder(c *gin.Context) {
	reminder, err := d.dashboardService.ToggleReminder(c.Request.Context(), viewer(c), c.Param("id"), c.Param("reminderId"))
	if err != nil {
		utils.HandleServiceError(c, err, "")
		return
	}
	utils.RespondSuccess(c, reminder, "Reminder updated")
}

func viewer(c *gin.Context) utils.Claims {
	if claims := middleware.ClaimsFrom(c); claims != nil {
		return *claims
	}
	return utils.Claims{}
}
