package service

import "errors"

var (
	// ErrAuthFailure covers both unknown username and wrong password so
	// the login form cannot be used to enumerate accounts.
	ErrAuthFailure = errors.New("invalid username or password")

	ErrDuplicateUser = errors.New("username already exists")
)

// ValidationError carries a human-readable reason shown inline on the form.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validation(reason string) error {
	return &ValidationError{Reason: reason}
}
