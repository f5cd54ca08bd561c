package ports

import (
	"context"

	"github.com/peopleops/onboarding-system/internal/core/domain"
)

// EmployeeService converts completed onboarding records into employee
// accounts and answers account lookups.
type EmployeeService interface {
	// Provision creates the employee account for the applicant, at most once:
	// when an account already exists it is returned unchanged with
	// created=false. On success the applicant is marked Onboarded.
	Provision(ctx context.Context, a *domain.Applicant, rec *domain.OnboardingRecord) (acct *domain.EmployeeAccount, created bool, err error)
	GetByApplicant(ctx context.Context, applicantID string) (*domain.EmployeeAccount, error)
}
