package ports

import (
	"context"

	"github.com/peopleops/onboarding-system/internal/core/domain"
)

// OnboardingRepository defines persistence operations for checklist records.
// Records are keyed by the applicant's stable id and never deleted: a record
// outlives completion as the audit trail of the onboarding.
type OnboardingRepository interface {
	Create(ctx context.Context, rec *domain.OnboardingRecord) error
	FindByApplicantID(ctx context.Context, applicantID string) (*domain.OnboardingRecord, error)
	// Update performs a compare-and-swap on the record's version and returns
	// domain.ErrVersionConflict when the record changed underneath the caller.
	Update(ctx context.Context, rec *domain.OnboardingRecord) error
}
