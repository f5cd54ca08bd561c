package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/peopleops/onboarding-system/internal/api/metrics"
	"github.com/peopleops/onboarding-system/internal/core/domain"
	"github.com/peopleops/onboarding-system/internal/core/ports"
)

// EmployeeProvisioner converts a completed onboarding record into an employee
// account, exactly once per applicant.
type EmployeeProvisioner struct {
	employees  ports.EmployeeRepository
	applicants ports.ApplicantRepository
	creds      ports.CredentialService
	log        zerolog.Logger
}

func NewEmployeeProvisioner(
	employees ports.EmployeeRepository,
	applicants ports.ApplicantRepository,
	creds ports.CredentialService,
	log zerolog.Logger,
) *EmployeeProvisioner {
	return &EmployeeProvisioner{
		employees:  employees,
		applicants: applicants,
		creds:      creds,
		log:        log,
	}
}

// Provision creates the employee account for the applicant. When an account
// already exists it is returned unchanged with created=false, so retries are
// observably idempotent. On success the applicant is marked Onboarded.
func (p *EmployeeProvisioner) Provision(ctx context.Context, a *domain.Applicant, rec *domain.OnboardingRecord) (*domain.EmployeeAccount, bool, error) {
	existing, err := p.employees.FindByApplicantID(ctx, a.ID)
	if err == nil {
		metrics.ProvisioningTotal.WithLabelValues("replayed").Inc()
		if err := p.markOnboarded(ctx, a, existing.ID); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, false, &domain.ProvisioningError{ApplicantID: a.ID, Err: err}
	}

	acct := &domain.EmployeeAccount{
		ID:          generateEmployeeID(),
		ApplicantID: a.ID,
		Email:       a.Email,
		Name:        a.Profile.Name,
		Department:  a.Profile.Department,
		Role:        a.Profile.Role,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := p.creds.Issue(ctx, acct); err != nil {
		metrics.ProvisioningTotal.WithLabelValues("error").Inc()
		return nil, false, &domain.ProvisioningError{ApplicantID: a.ID, Err: fmt.Errorf("issue credentials: %w", err)}
	}

	if err := p.employees.Create(ctx, acct); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmployee) {
			// Lost a race on the unique applicant_id index: drop our
			// freshly issued credential and hand back the winner's account.
			if derr := p.creds.Deactivate(ctx, acct.ID); derr != nil {
				p.log.Warn().Err(derr).Str("employee_id", acct.ID).Msg("failed to deactivate orphan credential")
			}
			winner, ferr := p.employees.FindByApplicantID(ctx, a.ID)
			if ferr != nil {
				return nil, false, &domain.ProvisioningError{ApplicantID: a.ID, Err: ferr}
			}
			metrics.ProvisioningTotal.WithLabelValues("replayed").Inc()
			if err := p.markOnboarded(ctx, a, winner.ID); err != nil {
				return nil, false, err
			}
			return winner, false, nil
		}
		if derr := p.creds.Deactivate(ctx, acct.ID); derr != nil {
			p.log.Warn().Err(derr).Str("employee_id", acct.ID).Msg("failed to deactivate orphan credential")
		}
		metrics.ProvisioningTotal.WithLabelValues("error").Inc()
		return nil, false, &domain.ProvisioningError{ApplicantID: a.ID, Err: err}
	}

	if err := p.markOnboarded(ctx, a, acct.ID); err != nil {
		return nil, false, err
	}

	metrics.ProvisioningTotal.WithLabelValues("created").Inc()
	p.log.Info().
		Str("applicant_id", a.ID).
		Str("employee_id", acct.ID).
		Str("email", acct.Email).
		Msg("employee account provisioned")

	return acct, true, nil
}

// GetByApplicant returns the account provisioned for the applicant, if any.
func (p *EmployeeProvisioner) GetByApplicant(ctx context.Context, applicantID string) (*domain.EmployeeAccount, error) {
	return p.employees.FindByApplicantID(ctx, applicantID)
}

func (p *EmployeeProvisioner) markOnboarded(ctx context.Context, a *domain.Applicant, employeeID string) error {
	if a.State == domain.StateOnboarded && a.EmployeeID == employeeID {
		return nil
	}
	// Never pull an applicant back out of a terminal state.
	if a.State == domain.StateRejected || a.State == domain.StateArchived {
		return &domain.ConflictError{
			Transition: domain.TransitionCompleteStep,
			State:      a.State,
			Reason:     "applicant has left the onboarding pipeline",
		}
	}
	a.State = domain.StateOnboarded
	a.EmployeeID = employeeID
	a.UpdatedAt = time.Now().UTC()
	if err := p.applicants.Update(ctx, a); err != nil {
		return &domain.ProvisioningError{ApplicantID: a.ID, Err: fmt.Errorf("mark onboarded: %w", err)}
	}
	return nil
}

// generateEmployeeID returns a unique employee id in the format EMP-XXXXXXXX.
func generateEmployeeID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("EMP-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("EMP-%08X", b)
}
