package dashboard_fx

import (
	"go.uber.org/fx"

	"oncocare/internal/repositories"
	"oncocare/internal/services"
)

var Module = fx.Provide(
	repositories.NewPatientRepository,
	repositories.NewReminderRepository,
	provideDashboardService,
)

func provideDashboardService(patientRepo repositories.PatientRepository, reminderRepo repositories.ReminderRepository) services.DashboardServiceInterface {
	return services.NewDashboardService(patientRepo, reminderRepo)
}
