package domain_models

const (
	RolePatient   = "patient"
	RoleClinician = "clinician"
)

type Patient struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	DateOfBirth   string `json:"dateOfBirth"`
	Diagnosis     string `json:"diagnosis"`
	TreatmentPlan string `json:"treatmentPlan"`
}

type Symptom struct {
	ID         string      `json:"id"`
	PatientID  string      `json:"patientId"`
	Date       string      `json:"date"` // YYYY-MM-DD
	Type       string      `json:"type"`
	Severity   int         `json:"severity"`
	Notes      string      `json:"notes"`
	AIGuidance *AIGuidance `json:"aiGuidance,omitempty"`
}

type AIGuidance struct {
	ID              string   `json:"id"`
	SymptomID       string   `json:"symptomId"`
	Response        string   `json:"response"`
	UrgencyLevel    string   `json:"urgencyLevel"`
	Recommendations []string `json:"recommendations"`
	Timestamp       string   `json:"timestamp"`
}

type Reminder struct {
	ID          string `json:"id"`
	PatientID   string `json:"patientId"`
	Medication  string `json:"medication"`
	Dosage      string `json:"dosage"`
	TimeOfDay   string `json:"timeOfDay"`
	Frequency   string `json:"frequency"`
	IsCompleted bool   `json:"isCompleted"`
}

type DoctorNote struct {
	ID             string `json:"id"`
	PatientID      string `json:"patientId"`
	OriginalText   string `json:"originalText"`
	SimplifiedText string `json:"simplifiedText"`
	DateCreated    string `json:"dateCreated"`
}

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	PatientID string `json:"patientId,omitempty"`
}
