package handler

import (
	"github.com/peopleops/onboarding-system/internal/core/domain"
)

// --- Domain → HTTP response ---

func toApplicantResponse(a *domain.Applicant) applicantResponse {
	resp := applicantResponse{
		ID:         a.ID,
		Email:      a.Email,
		Name:       a.Profile.Name,
		Department: a.Profile.Department,
		Role:       a.Profile.Role,
		Experience: a.Profile.Experience,
		Education:  a.Profile.Education,
		Skills:     a.Profile.Skills,
		ResumeURL:  a.Profile.ResumeURL,
		State:      string(a.State),
		EmployeeID: a.EmployeeID,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
	if a.Rejection != nil {
		resp.Rejection = &rejectionResponse{
			Reason: a.Rejection.Reason,
			Stage:  string(a.Rejection.Stage),
			At:     a.Rejection.At,
		}
	}
	return resp
}

func toRecordResponse(rec *domain.OnboardingRecord) onboardingRecordResponse {
	return onboardingRecordResponse{
		ApplicantID: rec.ApplicantID,
		Email:       rec.Email,
		EmployeeID:  rec.EmployeeID,
		Steps:       rec.Steps,
		Status:      string(rec.Status),
		Notes:       rec.Notes,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

func toEmployeeResponse(acct *domain.EmployeeAccount) employeeResponse {
	return employeeResponse{
		ID:          acct.ID,
		ApplicantID: acct.ApplicantID,
		Email:       acct.Email,
		Name:        acct.Name,
		Department:  acct.Department,
		Role:        acct.Role,
		Active:      acct.Active,
		CreatedAt:   acct.CreatedAt,
	}
}
