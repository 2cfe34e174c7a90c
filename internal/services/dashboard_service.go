package services

import (
	"context"
	"time"

	"github.com/samber/lo"

	"oncocare/internal/models/domain_models"
	"oncocare/internal/models/response_models"
	"oncocare/internal/repositories"
	"oncocare/pkg/utils"
)

const (
	dateLayout   = "2006-01-02"
	recentWindow = 7 * 24 * time.Hour
)

type DashboardServiceInterface interface {
	Overview(ctx context.Context) (response_models.ClinicianDashboard, error)
	Symptoms(ctx context.Context, viewer utils.Claims, patientID string) ([]domain_models.Symptom, error)
	Reminders(ctx context.Context, viewer utils.Claims, patientID string) ([]domain_models.Reminder, error)
	Notes(ctx context.Context, viewer utils.Claims, patientID string) ([]domain_models.DoctorNote, error)
	ToggleReminder(ctx context.Context, viewer utils.Claims, patientID, reminderID string) (domain_models.Reminder, error)
}

type DashboardService struct {
	patientRepo  repositories.PatientRepository
	reminderRepo repositories.ReminderRepository
}

func NewDashboardService(patientRepo repositories.PatientRepository, reminderRepo repositories.ReminderRepository) DashboardServiceInterface {
	return &DashboardService{
		patientRepo:  patientRepo,
		reminderRepo: reminderRepo,
	}
}

func (s *DashboardService) Overview(ctx context.Context) (response_models.ClinicianDashboard, error) {
	patients, err := s.patientRepo.ListPatients(ctx)
	if err != nil {
		return response_models.ClinicianDashboard{}, err
	}
	symptoms, err := s.patientRepo.AllSymptoms(ctx)
	if err != nil {
		return response_models.ClinicianDashboard{}, err
	}

	byPatient := lo.GroupBy(symptoms, func(s domain_models.Symptom) string { return s.PatientID })

	overviews := lo.Map(patients, func(p domain_models.Patient, _ int) response_models.PatientOverview {
		own := byPatient[p.ID]
		o := response_models.PatientOverview{
			Patient:          p,
			Urgency:          response_models.UrgencyNone,
			HighUrgencyCount: lo.CountBy(own, isHighUrgency),
		}
		if latest, ok := latestSymptom(own); ok {
			o.LastSymptom = &latest
			if latest.AIGuidance != nil {
				o.Urgency = latest.AIGuidance.UrgencyLevel
			}
		}
		return o
	})

	return response_models.ClinicianDashboard{
		TotalPatients:       len(patients),
		HighUrgencySymptoms: lo.CountBy(symptoms, isHighUrgency),
		RecentSymptoms:      countRecent(symptoms),
		Patients:            overviews,
	}, nil
}

func (s *DashboardService) Symptoms(ctx context.Context, viewer utils.Claims, patientID string) ([]domain_models.Symptom, error) {
	if err := s.authorize(ctx, viewer, patientID); err != nil {
		return nil, err
	}
	return s.patientRepo.SymptomsByPatient(ctx, patientID)
}

func (s *DashboardService) Reminders(ctx context.Context, viewer utils.Claims, patientID string) ([]domain_models.Reminder, error) {
	if err := s.authorize(ctx, viewer, patientID); err != nil {
		return nil, err
	}
	return s.reminderRepo.ByPatient(ctx, patientID)
}

func (s *DashboardService) Notes(ctx context.Context, viewer utils.Claims, patientID string) ([]domain_models.DoctorNote, error) {
	if err := s.authorize(ctx, viewer, patientID); err != nil {
		return nil, err
	}
	return s.patientRepo.NotesByPatient(ctx, patientID)
}

func (s *DashboardService) ToggleReminder(ctx context.Context, viewer utils.Claims, patientID, reminderID string) (domain_models.Reminder, error) {
	if err := s.authorize(ctx, viewer, patientID); err != nil {
		return domain_models.Reminder{}, err
	}
	reminder, err := s.reminderRepo.Toggle(ctx, patientID, reminderID)
	if err != nil {
		return domain_models.Reminder{}, err
	}
	if reminder == nil {
		return domain_models.Reminder{}, utils.ErrReminderNotFound
	}
	return *reminder, nil
}

// authorize lets clinicians read any patient and patients only themselves.
func (s *DashboardService) authorize(ctx context.Context, viewer utils.Claims, patientID string) error {
	if viewer.Role != domain_models.RoleClinician && viewer.PatientID != patientID {
		return utils.ErrForbidden
	}
	patient, err := s.patientRepo.FindPatient(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return utils.ErrPatientNotFound
	}
	return nil
}

func isHighUrgency(s domain_models.Symptom) bool {
	return s.AIGuidance != nil && s.AIGuidance.UrgencyLevel == response_models.UrgencyHigh
}

func latestSymptom(symptoms []domain_models.Symptom) (domain_models.Symptom, bool) {
	if len(symptoms) == 0 {
		return domain_models.Symptom{}, false
	}
	return lo.MaxBy(symptoms, func(a, b domain_models.Symptom) bool { return a.Date > b.Date }), true
}

// countRecent counts symptoms within a week of the newest record, so the
// sample data stays meaningful regardless of the wall clock.
func countRecent(symptoms []domain_models.Symptom) int {
	latest, ok := latestSymptom(symptoms)
	if !ok {
		return 0
	}
	newest, err := time.Parse(dateLayout, latest.Date)
	if err != nil {
		return 0
	}
	cutoff := newest.Add(-recentWindow)
	return lo.CountBy(symptoms, func(s domain_models.Symptom) bool {
		d, err := time.Parse(dateLayout, s.Date)
		return err == nil && d.After(cutoff)
	})
}
