package ports

import (
	"context"

	"github.com/peopleops/onboarding-system/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employee accounts.
// A unique index on applicant_id enforces at most one account per applicant;
// Create returns domain.ErrDuplicateEmployee on a second insert.
type EmployeeRepository interface {
	Create(ctx context.Context, acct *domain.EmployeeAccount) error
	FindByApplicantID(ctx context.Context, applicantID string) (*domain.EmployeeAccount, error)
	SetActive(ctx context.Context, employeeID string, active bool) error
}
