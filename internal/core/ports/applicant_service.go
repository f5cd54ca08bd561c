package ports

import (
	"context"

	"github.com/peopleops/onboarding-system/internal/core/domain"
)

// CreateApplicantInput carries all data needed to register a new applicant.
type CreateApplicantInput struct {
	Email      string
	Name       string
	Department string
	Role       string
	Experience string
	Education  string
	Skills     []string
	ResumeURL  string
}

// ListApplicantsInput carries all parameters for the list endpoint.
type ListApplicantsInput struct {
	State      string
	Department string
	Search     string
	Page       int
	Limit      int
}

// ListApplicantsResult is returned by List.
type ListApplicantsResult struct {
	Items      []*domain.Applicant
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ApplicantService defines intake and query operations for applicants.
type ApplicantService interface {
	Create(ctx context.Context, in CreateApplicantInput) (*domain.Applicant, error)
	Get(ctx context.Context, id string) (*domain.Applicant, error)
	List(ctx context.Context, in ListApplicantsInput) (*ListApplicantsResult, error)
}
