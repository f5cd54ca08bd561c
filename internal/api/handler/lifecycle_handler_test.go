package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/onboarding-system/internal/core/domain"
)

type stubRejectionService struct {
	rejectEarlyFn      func(ctx context.Context, applicantID, reason string) (*domain.Applicant, error)
	rejectOnboardingFn func(ctx context.Context, applicantID, reason string) (*domain.Applicant, error)
	rejectEmployeeFn   func(ctx context.Context, applicantID, reason string) (*domain.Applicant, error)
}

func (s *stubRejectionService) RejectEarly(ctx context.Context, applicantID, reason string) (*domain.Applicant, error) {
	return s.rejectEarlyFn(ctx, applicantID, reason)
}

func (s *stubRejectionService) RejectDuringOnboarding(ctx context.Context, applicantID, reason string) (*domain.Applicant, error) {
	return s.rejectOnboardingFn(ctx, applicantID, reason)
}

func (s *stubRejectionService) RejectEmployee(ctx context.Context, applicantID, reason string) (*domain.Applicant, error) {
	return s.rejectEmployeeFn(ctx, applicantID, reason)
}

type stubArchiveService struct {
	archiveFn   func(ctx context.Context, applicantID string) (*domain.Applicant, error)
	unarchiveFn func(ctx context.Context, applicantID string) (*domain.Applicant, error)
}

func (s *stubArchiveService) Archive(ctx context.Context, applicantID string) (*domain.Applicant, error) {
	return s.archiveFn(ctx, applicantID)
}

func (s *stubArchiveService) Unarchive(ctx context.Context, applicantID string) (*domain.Applicant, error) {
	return s.unarchiveFn(ctx, applicantID)
}

func rejectedApplicant(id string, stage domain.RejectionStage, reason string) *domain.Applicant {
	return &domain.Applicant{
		ID:        id,
		State:     domain.StateRejected,
		Rejection: &domain.Rejection{Reason: reason, Stage: stage},
	}
}

func TestLifecycleHandler_RejectEarly_ReasonOptional(t *testing.T) {
	var gotReason string
	rejections := &stubRejectionService{
		rejectEarlyFn: func(_ context.Context, applicantID, reason string) (*domain.Applicant, error) {
			gotReason = reason
			return rejectedApplicant(applicantID, domain.StageApplication, reason), nil
		},
	}
	h := NewLifecycleHandler(rejections, &stubArchiveService{})

	// Empty body: the early path does not require a reason.
	c, rec := newTestContext(t, http.MethodPost, "/v1/applicants/app_1/reject", "", "app_1")
	if err := h.RejectEarly(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotReason != "" {
		t.Errorf("expected empty reason, got %q", gotReason)
	}
}

func TestLifecycleHandler_RejectDuringOnboarding_RequiresReason(t *testing.T) {
	rejections := &stubRejectionService{
		rejectOnboardingFn: func(context.Context, string, string) (*domain.Applicant, error) {
			t.Fatal("service must not be called without a reason")
			return nil, nil
		},
	}
	h := NewLifecycleHandler(rejections, &stubArchiveService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/applicants/app_1/onboarding/reject", `{}`, "app_1")
	err := h.RejectDuringOnboarding(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", he.Code)
	}
}

func TestLifecycleHandler_RejectDuringOnboarding_Success(t *testing.T) {
	rejections := &stubRejectionService{
		rejectOnboardingFn: func(_ context.Context, applicantID, reason string) (*domain.Applicant, error) {
			if reason != "failed background check" {
				t.Fatalf("unexpected reason: %q", reason)
			}
			return rejectedApplicant(applicantID, domain.StageOnboarding, reason), nil
		},
	}
	h := NewLifecycleHandler(rejections, &stubArchiveService{})

	c, rec := newTestContext(t, http.MethodPost, "/v1/applicants/app_1/onboarding/reject",
		`{"reason":"failed background check"}`, "app_1")
	if err := h.RejectDuringOnboarding(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp applicantResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.State != string(domain.StateRejected) {
		t.Errorf("expected rejected, got %q", resp.State)
	}
	if resp.Rejection == nil || resp.Rejection.Stage != string(domain.StageOnboarding) {
		t.Errorf("unexpected rejection payload: %+v", resp.Rejection)
	}
}

func TestLifecycleHandler_RejectEmployee_ConflictPropagates(t *testing.T) {
	conflict := &domain.ConflictError{Transition: domain.TransitionRejectEmployee, State: domain.StateArchived}
	rejections := &stubRejectionService{
		rejectEmployeeFn: func(context.Context, string, string) (*domain.Applicant, error) {
			return nil, conflict
		},
	}
	h := NewLifecycleHandler(rejections, &stubArchiveService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/applicants/app_1/employment/reject",
		`{"reason":"policy violation"}`, "app_1")
	err := h.RejectEmployee(c)

	var got *domain.ConflictError
	if !errors.As(err, &got) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestLifecycleHandler_ArchiveAndUnarchive(t *testing.T) {
	archival := &stubArchiveService{
		archiveFn: func(_ context.Context, applicantID string) (*domain.Applicant, error) {
			return &domain.Applicant{ID: applicantID, State: domain.StateArchived}, nil
		},
		unarchiveFn: func(_ context.Context, applicantID string) (*domain.Applicant, error) {
			return &domain.Applicant{ID: applicantID, State: domain.StateOnboarded}, nil
		},
	}
	h := NewLifecycleHandler(&stubRejectionService{}, archival)

	c, rec := newTestContext(t, http.MethodPost, "/v1/applicants/app_1/archive", "", "app_1")
	if err := h.Archive(c); err != nil {
		t.Fatalf("archive error: %v", err)
	}
	var resp applicantResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.State != string(domain.StateArchived) {
		t.Errorf("expected archived, got %q", resp.State)
	}

	c, rec = newTestContext(t, http.MethodPost, "/v1/applicants/app_1/unarchive", "", "app_1")
	if err := h.Unarchive(c); err != nil {
		t.Fatalf("unarchive error: %v", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.State != string(domain.StateOnboarded) {
		t.Errorf("expected onboarded, got %q", resp.State)
	}
}
