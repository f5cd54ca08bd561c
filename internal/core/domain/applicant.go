package domain

import "time"

// LifecycleState is the single tagged state of an applicant. It replaces the
// four independent boolean flags the old front end carried (rejected,
// archived, onboarded, inOnboarding) and their implicit precedence order.
type LifecycleState string

const (
	StateApplied    LifecycleState = "applied"
	StateOnboarding LifecycleState = "onboarding"
	StateOnboarded  LifecycleState = "onboarded"
	StateArchived   LifecycleState = "archived"
	StateRejected   LifecycleState = "rejected"
)

// Transition names every operation that may change an applicant's state.
type Transition string

const (
	TransitionAccept           Transition = "accept"
	TransitionRejectEarly      Transition = "reject_early"
	TransitionRejectOnboarding Transition = "reject_during_onboarding"
	TransitionCompleteStep     Transition = "complete_step"
	TransitionRejectEmployee   Transition = "reject_employee"
	TransitionArchive          Transition = "archive"
	TransitionUnarchive        Transition = "unarchive"
)

// RejectionStage records at which point of the pipeline a rejection happened.
type RejectionStage string

const (
	StageApplication RejectionStage = "application"
	StageOnboarding  RejectionStage = "onboarding"
	StageEmployment  RejectionStage = "employment"
)

// Rejection captures why and when an applicant was rejected.
type Rejection struct {
	Reason string         `json:"reason" bson:"reason"`
	Stage  RejectionStage `json:"stage" bson:"stage"`
	At     time.Time      `json:"at" bson:"at"`
}

// Profile holds the candidate data the lifecycle carries through unchanged.
type Profile struct {
	Name       string   `json:"name" bson:"name"`
	Department string   `json:"department" bson:"department"`
	Role       string   `json:"role" bson:"role"`
	Experience string   `json:"experience,omitempty" bson:"experience,omitempty"`
	Education  string   `json:"education,omitempty" bson:"education,omitempty"`
	Skills     []string `json:"skills,omitempty" bson:"skills,omitempty"`
	ResumeURL  string   `json:"resume_url,omitempty" bson:"resume_url,omitempty"`
}

// Applicant is the core aggregate root of the onboarding pipeline.
// Applicants are never deleted; rejection and archival are state changes.
type Applicant struct {
	ID         string         `json:"id" bson:"_id,omitempty"`
	Email      string         `json:"email" bson:"email"`
	Profile    Profile        `json:"profile" bson:"profile"`
	State      LifecycleState `json:"state" bson:"state"`
	Rejection  *Rejection     `json:"rejection,omitempty" bson:"rejection,omitempty"`
	EmployeeID string         `json:"employee_id,omitempty" bson:"employee_id,omitempty"`
	CreatedAt  time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" bson:"updated_at"`
	// Version is bumped on every persisted mutation (optimistic concurrency).
	Version int64 `json:"version" bson:"version"`
}

// transitionFrom defines the state each transition is legal from. Rejected is
// terminal and Archived only allows Unarchive, so neither appears as a source
// except where listed.
var transitionFrom = map[Transition]LifecycleState{
	TransitionAccept:           StateApplied,
	TransitionRejectEarly:      StateApplied,
	TransitionRejectOnboarding: StateOnboarding,
	TransitionCompleteStep:     StateOnboarding,
	TransitionRejectEmployee:   StateOnboarded,
	TransitionArchive:          StateOnboarded,
	TransitionUnarchive:        StateArchived,
}

// CanTransition is the pure transition guard: it reports whether t is legal
// for the applicant's current state (and checklist, where relevant) without
// mutating anything. A nil return means the transition is allowed; otherwise
// the typed error explains the denial.
func CanTransition(a *Applicant, rec *OnboardingRecord, t Transition) error {
	from, ok := transitionFrom[t]
	if !ok {
		return &ValidationError{Field: "transition", Reason: "unknown transition " + string(t)}
	}
	if a.State != from {
		return &ConflictError{Transition: t, State: a.State}
	}

	switch t {
	case TransitionCompleteStep, TransitionRejectOnboarding:
		if rec == nil {
			return &NotFoundError{Entity: "onboarding record", Key: a.ID}
		}
	}

	// A fully completed checklist belongs to the provisioner, not the
	// rejection path: the applicant is about to become (or already is) an
	// employee, and must be rejected through RejectEmployee instead.
	if t == TransitionRejectOnboarding && rec.AllStepsDone() {
		return &ConflictError{Transition: t, State: a.State, Reason: "onboarding checklist already complete"}
	}

	return nil
}
