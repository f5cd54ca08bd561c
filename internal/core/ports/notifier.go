package ports

import (
	"time"

	"github.com/peopleops/onboarding-system/internal/core/domain"
)

// LifecycleEvent describes a committed transition, published to observers
// (UI refresh, downstream systems) after the transition's atomic unit.
type LifecycleEvent struct {
	ApplicantID string                `json:"applicant_id"`
	Transition  domain.Transition     `json:"transition"`
	State       domain.LifecycleState `json:"state"`
	Step        string                `json:"step,omitempty"`
	EmployeeID  string                `json:"employee_id,omitempty"`
	At          time.Time             `json:"at"`
}

// Notifier publishes lifecycle events best-effort. Publish never blocks the
// caller on delivery and a delivery failure never rolls back a transition.
type Notifier interface {
	Publish(event LifecycleEvent)
}
