package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrInvalidFlight = errors.New("invalid flight id")

	// ErrStoreUnavailable wraps failures to open or prepare the store.
	// It is fatal: nothing above the bootstrap retries or recovers from it.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError carries the message shown to the user for bad input.
type ValidationError struct {
	Msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type InsufficientSeatsError struct {
	Available int
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("only %d seats available", e.Available)
}

// IsUserError reports whether err is an expected input or lookup problem
// that should be shown to the user rather than treated as a fault.
func IsUserError(err error) bool {
	var seats *InsufficientSeatsError
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrValidation), errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidFlight):
		return true
	case errors.As(err, &seats):
		return true
	}
	return false
}
