package repositories

import "oncocare/internal/models/domain_models"

// Sample data backing the demo. Nothing here is persisted.

func seedPatients() []domain_models.Patient {
	return []domain_models.Patient{
		{
			ID:            "patient-1",
			Name:          "Jane Doe",
			Email:         "jane.doe@email.com",
			DateOfBirth:   "1975-06-15",
			Diagnosis:     "Breast Cancer Stage II",
			TreatmentPlan: "Chemotherapy + Radiation",
		},
	}
}

func seedUsers() []domain_models.User {
	return []domain_models.User{
		{ID: "user-1", Name: "Jane Doe", Email: "jane.doe@email.com", Role: domain_models.RolePatient, PatientID: "patient-1"},
		{ID: "user-2", Name: "Dr. Sarah Johnson", Email: "dr.johnson@clinic.com", Role: domain_models.RoleClinician},
	}
}

func seedSymptoms() []domain_models.Symptom {
	return []domain_models.Symptom{
		{
			ID: "symptom-1", PatientID: "patient-1", Date: "2024-01-15", Type: "pain", Severity: 3,
			Notes: "Sharp pain in chest area, worse in the morning",
			AIGuidance: &domain_models.AIGuidance{
				ID: "guidance-1", SymptomID: "symptom-1", UrgencyLevel: "medium",
				Response: "Your pain level of 3 out of 5 is manageable but should be monitored. Take your prescribed pain medication as directed. If pain increases to level 4 or higher, or persists for more than 2 days, contact your doctor.",
				Recommendations: []string{
					"Take prescribed pain medication as directed",
					"Apply heat or cold as comfortable",
					"Rest and avoid strenuous activities",
					"Contact doctor if pain worsens",
				},
				Timestamp: "2024-01-15T10:30:00Z",
			},
		},
		{
			ID: "symptom-2", PatientID: "patient-1", Date: "2024-01-14", Type: "nausea", Severity: 2,
			Notes: "Mild nausea after chemotherapy session",
			AIGuidance: &domain_models.AIGuidance{
				ID: "guidance-2", SymptomID: "symptom-2", UrgencyLevel: "low",
				Response: "Nausea is a common side effect of chemotherapy. Your severity level of 2 suggests mild discomfort. Try eating small, frequent meals and avoid strong odors. If nausea worsens or prevents you from eating, contact your care team.",
				Recommendations: []string{
					"Eat small, frequent meals",
					"Stay hydrated with clear fluids",
					"Avoid strong smells and spicy foods",
					"Take anti-nausea medication if prescribed",
				},
				Timestamp: "2024-01-14T14:15:00Z",
			},
		},
		{
			ID: "symptom-3", PatientID: "patient-1", Date: "2024-01-13", Type: "dizziness", Severity: 4,
			Notes: "Feeling lightheaded when standing up",
			AIGuidance: &domain_models.AIGuidance{
				ID: "guidance-3", SymptomID: "symptom-3", UrgencyLevel: "high",
				Response: "Dizziness with severity level 4 requires attention. This could be related to your medication or treatment. Sit or lie down immediately when feeling dizzy. Contact your doctor today to discuss this symptom.",
				Recommendations: []string{
					"Sit or lie down when dizzy",
					"Move slowly when changing positions",
					"Stay hydrated",
					"Contact your doctor today",
				},
				Timestamp: "2024-01-13T09:45:00Z",
			},
		},
	}
}

func seedReminders() []domain_models.Reminder {
	return []domain_models.Reminder{
		{ID: "reminder-1", PatientID: "patient-1", Medication: "Ondansetron", Dosage: "8mg", TimeOfDay: "08:00", Frequency: "Every 8 hours"},
		{ID: "reminder-2", PatientID: "patient-1", Medication: "Ibuprofen", Dosage: "400mg", TimeOfDay: "12:00", Frequency: "As needed for pain", IsCompleted: true},
		{ID: "reminder-3", PatientID: "patient-1", Medication: "Vitamin D", Dosage: "1000IU", TimeOfDay: "20:00", Frequency: "Daily"},
	}
}

func seedNotes() []domain_models.DoctorNote {
	return []domain_models.DoctorNote{
		{
			ID:             "note-1",
			PatientID:      "patient-1",
			OriginalText:   "Patient to administer subcutaneous injection of Filgrastim 300mcg daily for 7 days post-chemotherapy to prevent neutropenia. Monitor for signs of bone pain. Discontinue if severe allergic reaction occurs. Follow up in clinic in 2 weeks for CBC with differential.",
			SimplifiedText: "Give yourself a shot of Filgrastim medicine under your skin once a day for 7 days after chemotherapy. This helps prevent infection. You might get some bone pain - this is normal. Stop the medicine and call us right away if you have a bad allergic reaction like trouble breathing or severe rash. Come back to see us in 2 weeks for blood tests.",
			DateCreated:    "2024-01-12",
		},
	}
}
