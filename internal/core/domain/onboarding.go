package domain

import "time"

// OnboardingStatus is the aggregate status of an onboarding checklist.
type OnboardingStatus string

const (
	OnboardingPending    OnboardingStatus = "pending"
	OnboardingInProgress OnboardingStatus = "in_progress"
	// OnboardingCompleted is only ever committed together with a successful
	// employee provisioning: readers never observe a completed record
	// without a matching employee account.
	OnboardingCompleted OnboardingStatus = "completed"
)

// OnboardingRecord tracks the completion checklist of an accepted applicant.
// It persists after completion as an audit trail and is never deleted.
type OnboardingRecord struct {
	ApplicantID string           `json:"applicant_id" bson:"applicant_id"`
	Email       string           `json:"email" bson:"email"`
	EmployeeID  string           `json:"employee_id,omitempty" bson:"employee_id,omitempty"`
	Steps       map[string]bool  `json:"steps" bson:"steps"`
	Status      OnboardingStatus `json:"status" bson:"status"`
	Notes       string           `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at" bson:"updated_at"`
	Version     int64            `json:"version" bson:"version"`
}

// NewOnboardingRecord creates a record with every configured step unchecked.
func NewOnboardingRecord(applicantID, email string, steps []string) *OnboardingRecord {
	m := make(map[string]bool, len(steps))
	for _, s := range steps {
		m[s] = false
	}
	now := time.Now().UTC()
	return &OnboardingRecord{
		ApplicantID: applicantID,
		Email:       email,
		Steps:       m,
		Status:      OnboardingPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HasStep reports whether name is part of this record's checklist.
func (r *OnboardingRecord) HasStep(name string) bool {
	_, ok := r.Steps[name]
	return ok
}

// AllStepsDone reports whether every checklist entry is checked.
func (r *OnboardingRecord) AllStepsDone() bool {
	if len(r.Steps) == 0 {
		return false
	}
	for _, done := range r.Steps {
		if !done {
			return false
		}
	}
	return true
}

// ProgressStatus derives Pending or InProgress from the current checklist.
// It deliberately never returns Completed: that status is committed by the
// coordinator only after provisioning succeeds.
func (r *OnboardingRecord) ProgressStatus() OnboardingStatus {
	for _, done := range r.Steps {
		if done {
			return OnboardingInProgress
		}
	}
	return OnboardingPending
}
