package repositories

import (
	"context"
	"sort"

	"github.com/samber/lo"

	"oncocare/internal/models/domain_models"
)

type PatientRepository interface {
	ListPatients(ctx context.Context) ([]domain_models.Patient, error)
	// FindPatient returns nil, nil for an unknown id.
	FindPatient(ctx context.Context, id string) (*domain_models.Patient, error)
	// SymptomsByPatient returns symptoms newest first.
	SymptomsByPatient(ctx context.Context, patientID string) ([]domain_models.Symptom, error)
	AllSymptoms(ctx context.Context) ([]domain_models.Symptom, error)
	NotesByPatient(ctx context.Context, patientID string) ([]domain_models.DoctorNote, error)
}

// patientRepository serves read-only sample data.
type patientRepository struct {
	patients []domain_models.Patient
	symptoms []domain_models.Symptom
	notes    []domain_models.DoctorNote
}

func NewPatientRepository() PatientRepository {
	symptoms := seedSymptoms()
	sort.SliceStable(symptoms, func(i, j int) bool { return symptoms[i].Date > symptoms[j].Date })
	return &patientRepository{
		patients: seedPatients(),
		symptoms: symptoms,
		notes:    seedNotes(),
	}
}

func (r *patientRepository) ListPatients(ctx context.Context) ([]domain_models.Patient, error) {
	return append([]domain_models.Patient(nil), r.patients...), nil
}

func (r *patientRepository) FindPatient(ctx context.Context, id string) (*domain_models.Patient, error) {
	p, ok := lo.Find(r.patients, func(p domain_models.Patient) bool { return p.ID == id })
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *patientRepository) SymptomsByPatient(ctx context.Context, patientID string) ([]domain_models.Symptom, error) {
	return lo.Filter(r.symptoms, func(s domain_models.Symptom, _ int) bool { return s.PatientID == patientID }), nil
}

func (r *patientRepository) AllSymptoms(ctx context.Context) ([]domain_models.Symptom, error) {
	return append([]domain_models.Symptom(nil), r.symptoms...), nil
}

func (r *patientRepository) NotesByPatient(ctx context.Context, patientID string) ([]domain_models.DoctorNote, error) {
	return lo.Filter(r.notes, func(n domain_models.DoctorNote, _ int) bool { return n.PatientID == patientID }), nil
}
