package domain

import (
	"errors"
	"testing"
)

func applicantIn(state LifecycleState) *Applicant {
	return &Applicant{ID: "app_1", Email: "jane@example.com", State: state}
}

func recordWith(steps map[string]bool) *OnboardingRecord {
	return &OnboardingRecord{ApplicantID: "app_1", Steps: steps}
}

func TestCanTransition_Table(t *testing.T) {
	states := []LifecycleState{StateApplied, StateOnboarding, StateOnboarded, StateArchived, StateRejected}

	// The single legal source state for every transition.
	allowedFrom := map[Transition]LifecycleState{
		TransitionAccept:           StateApplied,
		TransitionRejectEarly:      StateApplied,
		TransitionRejectOnboarding: StateOnboarding,
		TransitionCompleteStep:     StateOnboarding,
		TransitionRejectEmployee:   StateOnboarded,
		TransitionArchive:          StateOnboarded,
		TransitionUnarchive:        StateArchived,
	}

	rec := recordWith(map[string]bool{"documents": false})

	for transition, from := range allowedFrom {
		for _, state := range states {
			err := CanTransition(applicantIn(state), rec, transition)

			if state == from {
				if err != nil {
					t.Errorf("%s from %s: expected allowed, got %v", transition, state, err)
				}
				continue
			}

			var conflict *ConflictError
			if !errors.As(err, &conflict) {
				t.Errorf("%s from %s: expected ConflictError, got %v", transition, state, err)
			}
		}
	}
}

func TestCanTransition_RejectedIsTerminal(t *testing.T) {
	a := applicantIn(StateRejected)
	rec := recordWith(map[string]bool{"documents": true})

	for _, transition := range []Transition{
		TransitionAccept, TransitionRejectEarly, TransitionRejectOnboarding,
		TransitionCompleteStep, TransitionRejectEmployee, TransitionArchive, TransitionUnarchive,
	} {
		if err := CanTransition(a, rec, transition); err == nil {
			t.Errorf("%s must be denied for a rejected applicant", transition)
		}
	}
}

func TestCanTransition_UnknownTransition(t *testing.T) {
	err := CanTransition(applicantIn(StateApplied), nil, Transition("promote"))

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCanTransition_MissingRecord(t *testing.T) {
	for _, transition := range []Transition{TransitionCompleteStep, TransitionRejectOnboarding} {
		err := CanTransition(applicantIn(StateOnboarding), nil, transition)

		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("%s without record: expected NotFoundError, got %v", transition, err)
		}
	}
}

func TestCanTransition_RejectOnboarding_CompleteChecklistIsConflict(t *testing.T) {
	rec := recordWith(map[string]bool{"documents": true, "contract": true})

	err := CanTransition(applicantIn(StateOnboarding), rec, TransitionRejectOnboarding)

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError for complete checklist, got %v", err)
	}
	if conflict.Reason == "" {
		t.Error("conflict must explain why the mid-onboarding rejection is denied")
	}
}

func TestCanTransition_RejectOnboarding_PartialChecklistAllowed(t *testing.T) {
	rec := recordWith(map[string]bool{"documents": true, "contract": false})

	if err := CanTransition(applicantIn(StateOnboarding), rec, TransitionRejectOnboarding); err != nil {
		t.Fatalf("partial checklist must be rejectable, got %v", err)
	}
}
