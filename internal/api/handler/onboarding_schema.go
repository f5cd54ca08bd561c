package handler

import "time"

type updateStepRequest struct {
	Step string `json:"step" validate:"required"`
	Done *bool  `json:"done" validate:"required"`
	// Notes, when present, replaces the record's free-text notes.
	Notes string `json:"notes"`
}

// rejectRequest carries the mandatory reason used by the two
// post-acceptance rejection paths.
type rejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// rejectEarlyRequest allows the reason to be omitted: no onboarding started,
// nothing to justify in the audit trail.
type rejectEarlyRequest struct {
	Reason string `json:"reason"`
}

type onboardingRecordResponse struct {
	ApplicantID string          `json:"applicant_id"`
	Email       string          `json:"email"`
	EmployeeID  string          `json:"employee_id,omitempty"`
	Steps       map[string]bool `json:"steps"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type employeeResponse struct {
	ID          string    `json:"id"`
	ApplicantID string    `json:"applicant_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Department  string    `json:"department"`
	Role        string    `json:"role"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type acceptResponse struct {
	Applicant applicantResponse        `json:"applicant"`
	Record    onboardingRecordResponse `json:"record"`
}

type updateStepResponse struct {
	Record         onboardingRecordResponse `json:"record"`
	AccountCreated bool                     `json:"account_created"`
	Employee       *employeeResponse        `json:"employee,omitempty"`
}
