package dto

import "github.com/google/uuid"

// ClinicianResponse is the welcome header of the dashboard.
type ClinicianResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
}

// PatientSummaryResponse is one entry of the patient list.
type PatientSummaryResponse struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	FullName     string    `json:"full_name"`
	HasAnalysis  bool      `json:"has_analysis"`
	LastAnalysis string    `json:"last_analysis"`
}

type DashboardResponse struct {
	Clinician ClinicianResponse        `json:"clinician"`
	Patients  []PatientSummaryResponse `json:"patients"`
	Total     int                      `json:"total"`
}
