package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across repositories and services.
var (
	ErrApplicantNotFound  = errors.New("applicant not found")
	ErrRecordNotFound     = errors.New("onboarding record not found")
	ErrEmployeeNotFound   = errors.New("employee account not found")
	ErrApplicantExists    = errors.New("applicant already exists")
	ErrDuplicateEmployee  = errors.New("employee account already exists")
	ErrVersionConflict    = errors.New("version conflict")
	ErrLockNotAcquired    = errors.New("applicant is locked by another transition")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
)

// ValidationError reports malformed input: an empty rejection reason, an
// unknown checklist step, and so on.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ConflictError reports a transition that is illegal for the applicant's
// current state. The applicant is left untouched.
type ConflictError struct {
	Transition Transition
	State      LifecycleState
	Reason     string
}

func (e *ConflictError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot %s applicant in state %q: %s", e.Transition, e.State, e.Reason)
	}
	return fmt.Sprintf("cannot %s applicant in state %q", e.Transition, e.State)
}

// NotFoundError reports a missing applicant, record, or account.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

// ProvisioningError wraps a credential-issuance or account-creation failure
// during employee provisioning. The onboarding record is guaranteed not to
// have been committed as completed when this is returned.
type ProvisioningError struct {
	ApplicantID string
	Err         error
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("provisioning applicant %q: %v", e.ApplicantID, e.Err)
}

func (e *ProvisioningError) Unwrap() error { return e.Err }
