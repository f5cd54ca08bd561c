package ports

import (
	"context"

	"github.com/peopleops/onboarding-system/internal/core/domain"
)

// CredentialService is the external credential/authentication collaborator.
// Issue is called by the provisioner when an account is created; Deactivate
// is called by the rejection paths that fire after acceptance.
type CredentialService interface {
	Issue(ctx context.Context, acct *domain.EmployeeAccount) (*domain.Credential, error)
	Deactivate(ctx context.Context, employeeID string) error
}
