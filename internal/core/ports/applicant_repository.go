package ports

import (
	"context"

	"github.com/peopleops/onboarding-system/internal/core/domain"
)

// ListApplicantsFilter carries all query parameters for listing applicants.
type ListApplicantsFilter struct {
	State      string // optional: filter by lifecycle state
	Department string // optional: filter by profile department
	Search     string // optional: partial match on name or email
	Page       int    // 1-based
	Limit      int    // max rows per page (capped at 100 by service)
}

// ApplicantRepository defines persistence operations for applicants.
// Update performs a compare-and-swap on the applicant's version and returns
// domain.ErrVersionConflict when another writer got there first.
type ApplicantRepository interface {
	Create(ctx context.Context, a *domain.Applicant) error
	FindByID(ctx context.Context, id string) (*domain.Applicant, error)
	FindByEmail(ctx context.Context, email string) (*domain.Applicant, error)
	Update(ctx context.Context, a *domain.Applicant) error
	// List returns a page of applicants matching filter and the total count.
	List(ctx context.Context, filter ListApplicantsFilter) ([]*domain.Applicant, int64, error)
}
