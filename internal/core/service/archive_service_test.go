package service

import (
	"context"
	"errors"
	"testing"

	"github.com/peopleops/onboarding-system/internal/core/domain"
)

func archiveFixture() (*ArchiveService, *stubApplicantRepo, *captureNotifier) {
	applicants := newStubApplicantRepo()
	notifier := &captureNotifier{}
	svc := NewArchiveService(applicants, &noopLocker{}, notifier, discardLogger)
	return svc, applicants, notifier
}

func TestArchiveService_RoundTrip(t *testing.T) {
	svc, applicants, notifier := archiveFixture()
	seeded := applicants.seed("app_1", domain.StateOnboarded)
	seeded.EmployeeID = "EMP-1"

	archived, err := svc.Archive(context.Background(), "app_1")
	if err != nil {
		t.Fatalf("archive failed: %v", err)
	}
	if archived.State != domain.StateArchived {
		t.Errorf("expected archived, got %q", archived.State)
	}
	// Archival never touches the provisioned account reference.
	if archived.EmployeeID != "EMP-1" {
		t.Errorf("employee reference must survive archival, got %q", archived.EmployeeID)
	}

	restored, err := svc.Unarchive(context.Background(), "app_1")
	if err != nil {
		t.Fatalf("unarchive failed: %v", err)
	}
	if restored.State != domain.StateOnboarded {
		t.Errorf("expected onboarded after unarchive, got %q", restored.State)
	}
	if restored.EmployeeID != "EMP-1" {
		t.Errorf("employee reference must survive the round trip, got %q", restored.EmployeeID)
	}

	if len(notifier.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(notifier.events))
	}
	if notifier.events[0].Transition != domain.TransitionArchive || notifier.events[1].Transition != domain.TransitionUnarchive {
		t.Errorf("unexpected event order: %+v", notifier.events)
	}
}

func TestArchiveService_Archive_DeniedOutsideOnboarded(t *testing.T) {
	for _, state := range []domain.LifecycleState{domain.StateApplied, domain.StateOnboarding, domain.StateRejected, domain.StateArchived} {
		svc, applicants, _ := archiveFixture()
		applicants.seed("app_1", state)

		_, err := svc.Archive(context.Background(), "app_1")

		var conflict *domain.ConflictError
		if !errors.As(err, &conflict) {
			t.Errorf("archive from %s: expected ConflictError, got %v", state, err)
		}
	}
}

func TestArchiveService_Unarchive_DeniedOutsideArchived(t *testing.T) {
	svc, applicants, _ := archiveFixture()
	applicants.seed("app_1", domain.StateOnboarded)

	_, err := svc.Unarchive(context.Background(), "app_1")

	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestArchiveService_NotFound(t *testing.T) {
	svc, _, _ := archiveFixture()

	_, err := svc.Archive(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrApplicantNotFound) {
		t.Fatalf("expected ErrApplicantNotFound, got %v", err)
	}
}
