package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrIdentityUnavailable = errors.New("caller identity unavailable")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrAccessDenied        = errors.New("access denied: caller is not a dentist")
	ErrStoreUnavailable    = errors.New("record store unavailable")
	ErrPatientNotFound     = errors.New("patient not assigned to caller")
)

// Steps of access resolution, used to tag store failures.
const (
	StepProfile     = "profile"
	StepAssignments = "assignments"
	StepPatients    = "patients"
)

// StoreError reports a failed record store call and the resolution step it
// belonged to. It matches ErrStoreUnavailable with errors.Is and unwraps to
// the underlying cause.
type StoreError struct {
	Step string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStoreUnavailable, e.Step, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// IsTerminal reports whether err ends the dashboard session and should send
// the caller back to the login entry point.
func IsTerminal(err error) bool {
	return errors.Is(err, ErrIdentityUnavailable) ||
		errors.Is(err, ErrProfileNotFound) ||
		errors.Is(err, ErrAccessDenied)
}
