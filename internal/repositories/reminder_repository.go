package repositories

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"oncocare/internal/models/domain_models"
)

type ReminderRepository interface {
	ByPatient(ctx context.Context, patientID string) ([]domain_models.Reminder, error)
	// Toggle flips IsCompleted and returns the updated reminder, or nil if
	// the patient has no such reminder.
	Toggle(ctx context.Context, patientID, reminderID string) (*domain_models.Reminder, error)
}

// reminderRepository keeps reminder completion in memory for the process lifetime.
type reminderRepository struct {
	mu        sync.RWMutex
	reminders []domain_models.Reminder
}

func NewReminderRepository() ReminderRepository {
	return &reminderRepository{reminders: seedReminders()}
}

func (r *reminderRepository) ByPatient(ctx context.Context, patientID string) ([]domain_models.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Filter(r.reminders, func(rem domain_models.Reminder, _ int) bool { return rem.PatientID == patientID }), nil
}

func (r *reminderRepository) Toggle(ctx context.Context, patientID, reminderID string) (*domain_models.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reminders {
		rem := &r.reminders[i]
		if rem.PatientID == patientID && rem.ID == reminderID {
			rem.IsCompleted = !rem.IsCompleted
			updated := *rem
			return &updated, nil
		}
	}
	return nil, nil
}
