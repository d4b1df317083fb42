package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Validation errors
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPrior       = errors.New("invalid prior specification")
	ErrInvalidObservation = errors.New("invalid observation")
	ErrInvalidQuery       = errors.New("invalid predictive query")
	ErrInvalidComparator  = errors.New("unrecognized comparator")
	ErrUnknownEvent       = errors.New("unknown dice event")
	ErrUnknownHand        = errors.New("unknown poker hand")

	// Numeric degeneracy errors
	ErrDegeneratePosterior = errors.New("degenerate posterior: likelihood underflowed everywhere")
	ErrEmptyGrid           = errors.New("probability grid is empty")
)

// Error constructors with context
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidInput, field, reason)
}

func NewPriorError(alpha, beta float64) error {
	return fmt.Errorf("%w: alpha=%g beta=%g (both must be > 0)", ErrInvalidPrior, alpha, beta)
}

func NewObservationError(trials, successes int) error {
	return fmt.Errorf("%w: trials=%d successes=%d (need 0 <= successes <= trials)", ErrInvalidObservation, trials, successes)
}

func NewQueryError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, reason)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidPrior) ||
		errors.Is(err, ErrInvalidObservation) ||
		errors.Is(err, ErrInvalidQuery) ||
		errors.Is(err, ErrInvalidComparator) ||
		errors.Is(err, ErrUnknownEvent) ||
		errors.Is(err, ErrUnknownHand)
}

func IsDegeneracyError(err error) bool {
	return errors.Is(err, ErrDegeneratePosterior) || errors.Is(err, ErrEmptyGrid)
}
