package response_models

import "oncocare/internal/models/domain_models"

// Urgency shown for a patient with no logged symptoms.
const UrgencyNone = "none"

type ClinicianDashboard struct {
	TotalPatients       int               `json:"totalPatients"`
	HighUrgencySymptoms int               `json:"highUrgencySymptoms"`
	RecentSymptoms      int               `json:"recentSymptoms"`
	Patients            []PatientOverview `json:"patients"`
}

type PatientOverview struct {
	Patient          domain_models.Patient  `json:"patient"`
	LastSymptom      *domain_models.Symptom `json:"lastSymptom,omitempty"`
	Urgency          string                 `json:"urgency"`
	HighUrgencyCount int                    `json:"highUrgencyCount"`
}
