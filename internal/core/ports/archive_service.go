package ports

import (
	"context"

	"github.com/peopleops/onboarding-system/internal/core/domain"
)

// ArchiveService toggles the reversible archival of onboarded employees.
// Unarchive is the exact inverse of Archive and leaves the onboarding
// record untouched.
type ArchiveService interface {
	Archive(ctx context.Context, applicantID string) (*domain.Applicant, error)
	Unarchive(ctx context.Context, applicantID string) (*domain.Applicant, error)
}
