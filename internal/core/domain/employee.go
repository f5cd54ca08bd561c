package domain

import "time"

// EmployeeAccount is the durable account created exactly once per applicant
// whose onboarding checklist reached completion.
type EmployeeAccount struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	ApplicantID string    `json:"applicant_id" bson:"applicant_id"`
	Email       string    `json:"email" bson:"email"`
	Name        string    `json:"name" bson:"name"`
	Department  string    `json:"department" bson:"department"`
	Role        string    `json:"role" bson:"role"`
	Active      bool      `json:"active" bson:"active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Credential is the opaque login material issued for a new employee account.
// The plaintext temp password exists only in the issuance response.
type Credential struct {
	EmployeeID   string `json:"employee_id"`
	Username     string `json:"username"`
	TempPassword string `json:"temp_password,omitempty"`
}
