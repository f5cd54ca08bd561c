package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/peopleops/onboarding-system/internal/api/metrics"
	"github.com/peopleops/onboarding-system/internal/core/domain"
	"github.com/peopleops/onboarding-system/internal/core/ports"
)

// RejectionService implements the three rejection pathways. Each is guarded
// by the transition table and records the reason, stage, and timestamp on
// the applicant; the post-acceptance paths also deactivate credentials.
type RejectionService struct {
	applicants ports.ApplicantRepository
	records    ports.OnboardingRepository
	employees  ports.EmployeeRepository
	creds      ports.CredentialService
	locks      KeyLocker
	notifier   ports.Notifier
	log        zerolog.Logger
}

func NewRejectionService(
	applicants ports.ApplicantRepository,
	records ports.OnboardingRepository,
	employees ports.EmployeeRepository,
	creds ports.CredentialService,
	locks KeyLocker,
	notifier ports.Notifier,
	log zerolog.Logger,
) *RejectionService {
	return &RejectionService{
		applicants: applicants,
		records:    records,
		employees:  employees,
		creds:      creds,
		locks:      locks,
		notifier:   notifier,
		log:        log,
	}
}

// RejectEarly rejects an applicant that was never accepted into onboarding.
// No credential exists at this stage, so there is nothing to deactivate.
func (s *RejectionService) RejectEarly(ctx context.Context, applicantID, reason string) (*domain.Applicant, error) {
	release, err := s.locks.Acquire(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	defer release()

	a, err := s.applicants.FindByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanTransition(a, nil, domain.TransitionRejectEarly); err != nil {
		metrics.TransitionsTotal.WithLabelValues(string(domain.TransitionRejectEarly), "denied").Inc()
		return nil, err
	}

	return s.commit(ctx, a, domain.TransitionRejectEarly, reason, domain.StageApplication)
}

// RejectDuringOnboarding rejects an applicant mid-checklist. A fully
// completed checklist is a conflict: that applicant belongs to the
// RejectEmployee path once provisioned.
func (s *RejectionService) RejectDuringOnboarding(ctx context.Context, applicantID, reason string) (*domain.Applicant, error) {
	if reason == "" {
		return nil, &domain.ValidationError{Field: "reason", Reason: "must not be empty"}
	}

	release, err := s.locks.Acquire(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	defer release()

	a, err := s.applicants.FindByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	rec, err := s.records.FindByApplicantID(ctx, applicantID)
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err
	}

	if err := domain.CanTransition(a, rec, domain.TransitionRejectOnboarding); err != nil {
		metrics.TransitionsTotal.WithLabelValues(string(domain.TransitionRejectOnboarding), "denied").Inc()
		return nil, err
	}

	// Deactivate any pre-provisioned account before committing, so a
	// deactivation failure leaves the applicant untouched.
	if err := s.deactivateAccount(ctx, applicantID); err != nil {
		metrics.TransitionsTotal.WithLabelValues(string(domain.TransitionRejectOnboarding), "error").Inc()
		return nil, err
	}

	return s.commit(ctx, a, domain.TransitionRejectOnboarding, reason, domain.StageOnboarding)
}

// RejectEmployee rejects an already-onboarded employee and deactivates its
// account and credentials.
func (s *RejectionService) RejectEmployee(ctx context.Context, applicantID, reason string) (*domain.Applicant, error) {
	if reason == "" {
		return nil, &domain.ValidationError{Field: "reason", Reason: "must not be empty"}
	}

	release, err := s.locks.Acquire(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	defer release()

	a, err := s.applicants.FindByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanTransition(a, nil, domain.TransitionRejectEmployee); err != nil {
		metrics.TransitionsTotal.WithLabelValues(string(domain.TransitionRejectEmployee), "denied").Inc()
		return nil, err
	}

	if err := s.deactivateAccount(ctx, applicantID); err != nil {
		metrics.TransitionsTotal.WithLabelValues(string(domain.TransitionRejectEmployee), "error").Inc()
		return nil, err
	}

	return s.commit(ctx, a, domain.TransitionRejectEmployee, reason, domain.StageEmployment)
}

// deactivateAccount disables credentials and the account itself for the
// applicant's employee account, when one exists.
func (s *RejectionService) deactivateAccount(ctx context.Context, applicantID string) error {
	acct, err := s.employees.FindByApplicantID(ctx, applicantID)
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.creds.Deactivate(ctx, acct.ID); err != nil {
		return fmt.Errorf("deactivate credentials for %s: %w", acct.ID, err)
	}
	if err := s.employees.SetActive(ctx, acct.ID, false); err != nil {
		return fmt.Errorf("deactivate account %s: %w", acct.ID, err)
	}
	s.log.Info().Str("employee_id", acct.ID).Msg("employee account deactivated")
	return nil
}

func (s *RejectionService) commit(ctx context.Context, a *domain.Applicant, t domain.Transition, reason string, stage domain.RejectionStage) (*domain.Applicant, error) {
	now := time.Now().UTC()
	a.State = domain.StateRejected
	a.Rejection = &domain.Rejection{Reason: reason, Stage: stage, At: now}
	a.UpdatedAt = now

	if err := s.applicants.Update(ctx, a); err != nil {
		metrics.TransitionsTotal.WithLabelValues(string(t), "error").Inc()
		return nil, err
	}

	metrics.TransitionsTotal.WithLabelValues(string(t), "ok").Inc()
	metrics.RejectionsTotal.WithLabelValues(string(stage)).Inc()
	s.log.Info().
		Str("applicant_id", a.ID).
		Str("stage", string(stage)).
		Str("reason", reason).
		Msg("applicant rejected")

	s.notifier.Publish(ports.LifecycleEvent{
		ApplicantID: a.ID,
		Transition:  t,
		State:       a.State,
		At:          now,
	})

	return a, nil
}
