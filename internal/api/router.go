package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"oncocare/internal/api/controllers"
	"oncocare/internal/config"
	"oncocare/internal/models/domain_models"
	"oncocare/pkg/middleware"
	"oncocare/pkg/utils"
)

type RouterParams struct {
	fx.In

	Config   *config.Config
	Tokens   *utils.TokenManager
	Guidance *controllers.GuidanceController
	Quiz     *controllers.QuizController
	Mindcare *controllers.MindcareController
	Account  *controllers.AccountController
	Board    *controllers.DashboardController
}

func NewRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(p.Config.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterRoutes(r.Group("/api"), p)
	return r
}

func RegisterRoutes(api *gin.RouterGroup, p RouterParams) {
	limiter := middleware.NewRateLimiter(p.Config.RateLimit.RPS, p.Config.RateLimit.Burst)
	auth := middleware.JWTAuthMiddleware(p.Tokens)

	ai := api.Group("", limiter.Middleware())
	ai.POST("/guidance", p.Guidance.GetGuidance)
	ai.POST("/get-ai-guidance", p.Guidance.GetGuidance)
	ai.POST("/simplify-note", p.Guidance.SimplifyNote)
	ai.POST("/chat-response", p.Guidance.ChatResponse)
	ai.POST("/quiz", p.Quiz.Quiz)

	// The crisis check never reaches the model and must always answer.
	api.POST("/mindcare/check-crisis", p.Mindcare.CheckCrisis)
	ai.POST("/mindcare/chat", p.Mindcare.Chat)

	authGroup := api.Group("/auth")
	authGroup.POST("/login", p.Account.Login)
	authGroup.GET("/me", auth, p.Account.Me)

	clinician := api.Group("/clinician", auth, middleware.RoleMiddleware(domain_models.RoleClinician))
	clinician.GET("/dashboard", p.Board.GetDashboard)

	patients := api.Group("/patients", auth)
	patients.GET("/:id/symptoms", p.Board.GetSymptoms)
	patients.GET("/:id/reminders", p.Board.GetReminders)
	patients.GET("/:id/notes", p.Board.GetNotes)
	patients.PATCH("/:id/reminders/:reminderId/toggle", p.Board.ToggleReminder)
}
