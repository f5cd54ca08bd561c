package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/peopleops/onboarding-system/internal/api/metrics"
	"github.com/peopleops/onboarding-system/internal/core/domain"
	"github.com/peopleops/onboarding-system/internal/core/ports"
)

// KeyLocker serializes transitions on a single applicant across concurrent
// administrators (Redis). Acquire blocks until the lock is held or ctx is
// done; the returned func releases it.
type KeyLocker interface {
	Acquire(ctx context.Context, key string) (func(), error)
}

// OnboardingService coordinates the checklist lifecycle: acceptance into
// onboarding, step updates, status recomputation, and provisioning on
// completion.
type OnboardingService struct {
	applicants ports.ApplicantRepository
	records    ports.OnboardingRepository
	employees  ports.EmployeeService
	locks      KeyLocker
	notifier   ports.Notifier
	steps      []string
	log        zerolog.Logger
}

func NewOnboardingService(
	applicants ports.ApplicantRepository,
	records ports.OnboardingRepository,
	employees ports.EmployeeService,
	locks KeyLocker,
	notifier ports.Notifier,
	steps []string,
	log zerolog.Logger,
) *OnboardingService {
	return &OnboardingService{
		applicants: applicants,
		records:    records,
		employees:  employees,
		locks:      locks,
		notifier:   notifier,
		steps:      steps,
		log:        log,
	}
}

// Accept moves an applicant from Applied into Onboarding and creates its
// checklist record with every configured step unchecked.
func (s *OnboardingService) Accept(ctx context.Context, applicantID string) (*ports.AcceptResult, error) {
	timer := prometheus.NewTimer(metrics.TransitionDuration.WithLabelValues(string(domain.TransitionAccept)))
	defer timer.ObserveDuration()

	release, err := s.locks.Acquire(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	defer release()

	a, err := s.applicants.FindByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanTransition(a, nil, domain.TransitionAccept); err != nil {
		metrics.TransitionsTotal.WithLabelValues(string(domain.TransitionAccept), "denied").Inc()
		return nil, err
	}

	// The record goes in first: it is inert while the applicant is still
	// Applied, so the applicant write below is the single commit point.
	rec := domain.NewOnboardingRecord(a.ID, a.Email, s.steps)
	if err := s.records.Create(ctx, rec); err != nil {
		// An earlier accept may have written the record and then failed the
		// applicant update. Reuse the leftover instead of failing the retry.
		existing, ferr := s.records.FindByApplicantID(ctx, a.ID)
		if ferr != nil {
			metrics.TransitionsTotal.WithLabelValues(string(domain.TransitionAccept), "error").Inc()
			return nil, fmt.Errorf("accept: create onboarding record: %w", err)
		}
		rec = existing
	}

	now := time.Now().UTC()
	a.State = domain.StateOnboarding
	a.UpdatedAt = now
	if err := s.applicants.Update(ctx, a); err != nil {
		metrics.TransitionsTotal.WithLabelValues(string(domain.TransitionAccept), "error").Inc()
		return nil, err
	}

	metrics.TransitionsTotal.WithLabelValues(string(domain.TransitionAccept), "ok").Inc()
	s.log.Info().Str("applicant_id", a.ID).Str("email", a.Email).Msg("applicant accepted into onboarding")

	s.notifier.Publish(ports.LifecycleEvent{
		ApplicantID: a.ID,
		Transition:  domain.TransitionAccept,
		State:       a.State,
		At:          now,
	})

	return &ports.AcceptResult{Applicant: a, Record: rec}, nil
}

// UpdateStep toggles one checklist step and recomputes the aggregate status.
// When the resulting checklist is fully checked, the employee account is
// provisioned and the record committed as completed in the same logical unit:
// a provisioning failure leaves the status at in_progress.
func (s *OnboardingService) UpdateStep(ctx context.Context, in ports.UpdateStepInput) (*ports.UpdateStepResult, error) {
	timer := prometheus.NewTimer(metrics.TransitionDuration.WithLabelValues(string(domain.TransitionCompleteStep)))
	defer timer.ObserveDuration()

	release, err := s.locks.Acquire(ctx, in.ApplicantID)
	if err != nil {
		return nil, err
	}
	defer release()

	rec, err := s.records.FindByApplicantID(ctx, in.ApplicantID)
	if err != nil {
		return nil, err
	}
	a, err := s.applicants.FindByID(ctx, in.ApplicantID)
	if err != nil {
		return nil, err
	}

	if !rec.HasStep(in.Step) {
		return nil, &domain.ValidationError{Field: "step", Reason: fmt.Sprintf("unknown step %q", in.Step)}
	}

	// Replay/convergence path: this edit would not change a fully checked
	// checklist. Provision is idempotent, so a repeated call returns the
	// same account, and an earlier crash between provisioning and commit
	// is healed here. Only reachable while the applicant is still in the
	// onboarding pipeline; rejected and archived applicants fall through to
	// the transition guard below.
	if in.Done && rec.Steps[in.Step] && rec.AllStepsDone() &&
		(a.State == domain.StateOnboarding || a.State == domain.StateOnboarded) {
		return s.converge(ctx, a, rec)
	}

	if err := domain.CanTransition(a, rec, domain.TransitionCompleteStep); err != nil {
		metrics.TransitionsTotal.WithLabelValues(string(domain.TransitionCompleteStep), "denied").Inc()
		return nil, err
	}

	now := time.Now().UTC()
	rec.Steps[in.Step] = in.Done
	if in.Notes != "" {
		rec.Notes = in.Notes
	}
	rec.UpdatedAt = now

	result := &ports.UpdateStepResult{Record: rec}

	if rec.AllStepsDone() {
		acct, created, err := s.employees.Provision(ctx, a, rec)
		if err != nil {
			// Commit the step edit but roll the status back to in_progress:
			// completed status and account creation happen together or not
			// at all.
			rec.Status = domain.OnboardingInProgress
			if uerr := s.records.Update(ctx, rec); uerr != nil {
				s.log.Error().Err(uerr).Str("applicant_id", a.ID).Msg("failed to persist step edit after provisioning failure")
			}
			metrics.TransitionsTotal.WithLabelValues(string(domain.TransitionCompleteStep), "error").Inc()
			return nil, err
		}
		rec.Status = domain.OnboardingCompleted
		rec.EmployeeID = acct.ID
		result.Account = acct
		result.AccountCreated = created
	} else {
		rec.Status = rec.ProgressStatus()
	}

	if err := s.records.Update(ctx, rec); err != nil {
		metrics.TransitionsTotal.WithLabelValues(string(domain.TransitionCompleteStep), "error").Inc()
		return nil, err
	}

	metrics.StepUpdatesTotal.WithLabelValues(in.Step).Inc()
	metrics.TransitionsTotal.WithLabelValues(string(domain.TransitionCompleteStep), "ok").Inc()
	s.log.Info().
		Str("applicant_id", a.ID).
		Str("step", in.Step).
		Bool("done", in.Done).
		Str("status", string(rec.Status)).
		Msg("onboarding step updated")

	s.notifier.Publish(ports.LifecycleEvent{
		ApplicantID: a.ID,
		Transition:  domain.TransitionCompleteStep,
		State:       a.State,
		Step:        in.Step,
		EmployeeID:  rec.EmployeeID,
		At:          now,
	})

	return result, nil
}

// converge ensures a fully checked record has its account provisioned and its
// completed status committed, and returns the same account on every call.
func (s *OnboardingService) converge(ctx context.Context, a *domain.Applicant, rec *domain.OnboardingRecord) (*ports.UpdateStepResult, error) {
	acct, created, err := s.employees.Provision(ctx, a, rec)
	if err != nil {
		metrics.TransitionsTotal.WithLabelValues(string(domain.TransitionCompleteStep), "error").Inc()
		return nil, err
	}
	if rec.Status != domain.OnboardingCompleted || rec.EmployeeID != acct.ID {
		rec.Status = domain.OnboardingCompleted
		rec.EmployeeID = acct.ID
		rec.UpdatedAt = time.Now().UTC()
		if err := s.records.Update(ctx, rec); err != nil {
			return nil, err
		}
	}
	s.log.Debug().Str("applicant_id", a.ID).Str("employee_id", acct.ID).Msg("idempotent step update replay")
	return &ports.UpdateStepResult{Record: rec, Account: acct, AccountCreated: created}, nil
}

// GetRecord returns the checklist record for an applicant.
func (s *OnboardingService) GetRecord(ctx context.Context, applicantID string) (*domain.OnboardingRecord, error) {
	return s.records.FindByApplicantID(ctx, applicantID)
}
