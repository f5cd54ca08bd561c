package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/peopleops/onboarding-system/internal/api/metrics"
	"github.com/peopleops/onboarding-system/internal/core/domain"
	"github.com/peopleops/onboarding-system/internal/core/ports"
)

// ArchiveService toggles the reversible archival of onboarded employees.
// The onboarding record is never touched by either direction.
type ArchiveService struct {
	applicants ports.ApplicantRepository
	locks      KeyLocker
	notifier   ports.Notifier
	log        zerolog.Logger
}

func NewArchiveService(applicants ports.ApplicantRepository, locks KeyLocker, notifier ports.Notifier, log zerolog.Logger) *ArchiveService {
	return &ArchiveService{applicants: applicants, locks: locks, notifier: notifier, log: log}
}

// Archive hides an onboarded, non-rejected employee from the active view.
func (s *ArchiveService) Archive(ctx context.Context, applicantID string) (*domain.Applicant, error) {
	return s.toggle(ctx, applicantID, domain.TransitionArchive, domain.StateArchived)
}

// Unarchive is the exact inverse of Archive: the applicant returns to the
// Onboarded state it held before.
func (s *ArchiveService) Unarchive(ctx context.Context, applicantID string) (*domain.Applicant, error) {
	return s.toggle(ctx, applicantID, domain.TransitionUnarchive, domain.StateOnboarded)
}

func (s *ArchiveService) toggle(ctx context.Context, applicantID string, t domain.Transition, target domain.LifecycleState) (*domain.Applicant, error) {
	release, err := s.locks.Acquire(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	defer release()

	a, err := s.applicants.FindByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanTransition(a, nil, t); err != nil {
		metrics.TransitionsTotal.WithLabelValues(string(t), "denied").Inc()
		return nil, err
	}

	now := time.Now().UTC()
	a.State = target
	a.UpdatedAt = now
	if err := s.applicants.Update(ctx, a); err != nil {
		metrics.TransitionsTotal.WithLabelValues(string(t), "error").Inc()
		return nil, err
	}

	metrics.TransitionsTotal.WithLabelValues(string(t), "ok").Inc()
	s.log.Info().Str("applicant_id", a.ID).Str("state", string(a.State)).Msg("archive state changed")

	s.notifier.Publish(ports.LifecycleEvent{
		ApplicantID: a.ID,
		Transition:  t,
		State:       a.State,
		At:          now,
	})

	return a, nil
}
