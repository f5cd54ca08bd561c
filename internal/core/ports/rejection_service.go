package ports

import (
	"context"

	"github.com/peopleops/onboarding-system/internal/core/domain"
)

// RejectionService exposes the three rejection pathways. Rejection is
// terminal: no transition is valid for a rejected applicant afterwards.
type RejectionService interface {
	// RejectEarly rejects an applicant that was never accepted into
	// onboarding. Reason is optional on this path.
	RejectEarly(ctx context.Context, applicantID, reason string) (*domain.Applicant, error)
	// RejectDuringOnboarding rejects an applicant mid-checklist and
	// deactivates any pre-provisioned account. Reason is required.
	RejectDuringOnboarding(ctx context.Context, applicantID, reason string) (*domain.Applicant, error)
	// RejectEmployee rejects an already-onboarded employee and deactivates
	// its account and credentials. Reason is required.
	RejectEmployee(ctx context.Context, applicantID, reason string) (*domain.Applicant, error)
}
