package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/peopleops/onboarding-system/internal/core/domain"
	"github.com/peopleops/onboarding-system/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ApplicantService implements intake and query operations.
type ApplicantService struct {
	repo ports.ApplicantRepository
	log  zerolog.Logger
}

func NewApplicantService(repo ports.ApplicantRepository, log zerolog.Logger) *ApplicantService {
	return &ApplicantService{repo: repo, log: log}
}

// Create registers a new applicant in the Applied state. Email is a
// secondary natural key: a second registration with the same email fails
// with ErrApplicantExists.
func (s *ApplicantService) Create(ctx context.Context, in ports.CreateApplicantInput) (*domain.Applicant, error) {
	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, domain.ErrApplicantNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrApplicantExists
	}

	now := time.Now().UTC()
	a := &domain.Applicant{
		ID:    uuid.NewString(),
		Email: in.Email,
		Profile: domain.Profile{
			Name:       in.Name,
			Department: in.Department,
			Role:       in.Role,
			Experience: in.Experience,
			Education:  in.Education,
			Skills:     in.Skills,
			ResumeURL:  in.ResumeURL,
		},
		State:     domain.StateApplied,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.log.Error().Err(err).Str("email", in.Email).Msg("failed to create applicant")
		return nil, err
	}

	s.log.Info().Str("applicant_id", a.ID).Str("email", a.Email).Msg("applicant registered")
	return a, nil
}

// Get returns a single applicant by id.
func (s *ApplicantService) Get(ctx context.Context, id string) (*domain.Applicant, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of applicants matching the filter.
func (s *ApplicantService) List(ctx context.Context, in ports.ListApplicantsInput) (*ports.ListApplicantsResult, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	page := in.Page
	if page <= 0 {
		page = 1
	}

	items, total, err := s.repo.List(ctx, ports.ListApplicantsFilter{
		State:      in.State,
		Department: in.Department,
		Search:     in.Search,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return &ports.ListApplicantsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
