package ports

import (
	"context"

	"github.com/peopleops/onboarding-system/internal/core/domain"
)

// AcceptResult is returned when an applicant is moved into onboarding.
type AcceptResult struct {
	Applicant *domain.Applicant
	Record    *domain.OnboardingRecord
}

// UpdateStepInput carries a single checklist edit.
type UpdateStepInput struct {
	ApplicantID string
	Step        string
	Done        bool
	// Notes, when non-empty, replaces the record's free-text notes.
	Notes string
}

// UpdateStepResult is returned by UpdateStep. AccountCreated distinguishes
// the call that actually provisioned the employee account from idempotent
// replays, which return the same account with AccountCreated=false.
type UpdateStepResult struct {
	Record         *domain.OnboardingRecord
	Account        *domain.EmployeeAccount // non-nil once the record is completed
	AccountCreated bool
}

// OnboardingService sequences checklist edits and status recomputation for
// the onboarding lifecycle.
type OnboardingService interface {
	// Accept moves an applicant from Applied into Onboarding and creates its
	// checklist record with every configured step unchecked.
	Accept(ctx context.Context, applicantID string) (*AcceptResult, error)
	// UpdateStep toggles one checklist step. When the resulting checklist is
	// fully checked it provisions the employee account and commits the record
	// as completed; provisioning failure rolls the status back to in_progress.
	UpdateStep(ctx context.Context, in UpdateStepInput) (*UpdateStepResult, error)
	GetRecord(ctx context.Context, applicantID string) (*domain.OnboardingRecord, error)
}
