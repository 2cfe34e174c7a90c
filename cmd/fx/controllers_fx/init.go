package controllers_fx

import (
	"go.uber.org/fx"

	"oncocare/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewGuidanceController),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewMindcareController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewDashboardController))
