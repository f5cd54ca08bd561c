package service

import (
	"context"
	"errors"
	"testing"

	"github.com/peopleops/onboarding-system/internal/core/domain"
	"github.com/peopleops/onboarding-system/internal/core/ports"
)

func applicantInput(email string) ports.CreateApplicantInput {
	return ports.CreateApplicantInput{
		Email:      email,
		Name:       "Jane Doe",
		Department: "Engineering",
		Role:       "Backend Developer",
		Skills:     []string{"go", "mongodb"},
	}
}

func TestApplicantService_Create_Success(t *testing.T) {
	repo := newStubApplicantRepo()
	svc := NewApplicantService(repo, discardLogger)

	a, err := svc.Create(context.Background(), applicantInput("jane@example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.ID == "" {
		t.Error("id must be generated")
	}
	if a.State != domain.StateApplied {
		t.Errorf("new applicant must start applied, got %q", a.State)
	}
	if a.Profile.Name != "Jane Doe" || a.Profile.Department != "Engineering" {
		t.Errorf("profile not carried through: %+v", a.Profile)
	}
	if a.CreatedAt.IsZero() {
		t.Error("CreatedAt must be set")
	}
}

func TestApplicantService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubApplicantRepo()
	svc := NewApplicantService(repo, discardLogger)

	if _, err := svc.Create(context.Background(), applicantInput("jane@example.com")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), applicantInput("jane@example.com"))
	if !errors.Is(err, domain.ErrApplicantExists) {
		t.Fatalf("expected ErrApplicantExists, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Errorf("expected one stored applicant, got %d", len(repo.byID))
	}
}

func TestApplicantService_Get(t *testing.T) {
	repo := newStubApplicantRepo()
	svc := NewApplicantService(repo, discardLogger)
	repo.seed("app_1", domain.StateApplied)

	a, err := svc.Get(context.Background(), "app_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != "app_1" {
		t.Errorf("wrong applicant returned: %q", a.ID)
	}

	if _, err := svc.Get(context.Background(), "ghost"); !errors.Is(err, domain.ErrApplicantNotFound) {
		t.Fatalf("expected ErrApplicantNotFound, got %v", err)
	}
}

func TestApplicantService_List_Defaults(t *testing.T) {
	repo := newStubApplicantRepo()
	svc := NewApplicantService(repo, discardLogger)
	repo.seed("app_1", domain.StateApplied)
	repo.seed("app_2", domain.StateOnboarding)

	result, err := svc.List(context.Background(), ports.ListApplicantsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Page != 1 {
		t.Errorf("default page must be 1, got %d", result.Page)
	}
	if result.Limit != defaultPageLimit {
		t.Errorf("default limit must be %d, got %d", defaultPageLimit, result.Limit)
	}
	if result.Total != 2 {
		t.Errorf("expected 2 applicants, got %d", result.Total)
	}
	if result.TotalPages != 1 {
		t.Errorf("expected 1 page, got %d", result.TotalPages)
	}
}

func TestApplicantService_List_CapsLimit(t *testing.T) {
	repo := newStubApplicantRepo()
	svc := NewApplicantService(repo, discardLogger)

	result, err := svc.List(context.Background(), ports.ListApplicantsInput{Limit: 10_000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Limit != maxPageLimit {
		t.Errorf("limit must be capped at %d, got %d", maxPageLimit, result.Limit)
	}
}

func TestApplicantService_List_StateFilter(t *testing.T) {
	repo := newStubApplicantRepo()
	svc := NewApplicantService(repo, discardLogger)
	repo.seed("app_1", domain.StateApplied)
	repo.seed("app_2", domain.StateOnboarded)

	result, err := svc.List(context.Background(), ports.ListApplicantsInput{State: string(domain.StateOnboarded)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 {
		t.Fatalf("expected 1 match, got %d", result.Total)
	}
	if result.Items[0].ID != "app_2" {
		t.Errorf("wrong applicant matched: %q", result.Items[0].ID)
	}
}
