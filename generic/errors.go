/*
errors.go - Centralized error kinds for the engine

PURPOSE:
  All error kinds in one place for consistency and discoverability.
  Domain packages wrap these sentinels with additional context.

ERROR KINDS:
  InvalidInput      - malformed or missing required fields
  InvalidState      - impossible values (negative day counts, etc.)
  InconsistentState - stored derived value disagrees with recomputation
  InvalidTransition - state-machine violation (deciding a decided request)
  NotFound          - reference to a non-existent entity

  Every kind is local and recoverable: the caller decides whether to
  surface a message, auto-correct, or block the action. Nothing here is
  fatal.

USAGE:
  Domain packages wrap the sentinels:

    if errors.Is(err, generic.ErrInvalidTransition) {
        // surface to the caller, do not write
    }

SEE ALSO:
  - validate.go: Produces FieldsError from struct validation
  - leave/lifecycle.go: Produces TransitionError
  - payroll/calc.go: Produces InconsistencyError
*/
package generic

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput is returned for malformed or missing required fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState is returned for impossible values, e.g. a negative
	// unused-day count fed to a carry-forward computation.
	ErrInvalidState = errors.New("invalid state")

	// ErrInconsistentState is returned when a stored derived value disagrees
	// with the recomputed value beyond Epsilon.
	ErrInconsistentState = errors.New("inconsistent state")

	// ErrInvalidTransition is returned when a lifecycle transition is
	// attempted out of a terminal state.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyGenerated is returned when bulk payroll generation targets a
	// month that already has records. Wraps ErrInvalidState.
	ErrAlreadyGenerated = fmt.Errorf("%w: payroll already generated", ErrInvalidState)
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// FieldsError lists every violated field of a validation check, not just
// the first.
type FieldsError struct {
	Entity string
	Fields []string
}

func (e *FieldsError) Error() string {
	return fmt.Sprintf("%s: invalid or missing fields: %s", e.Entity, strings.Join(e.Fields, ", "))
}

func (e *FieldsError) Unwrap() error { return ErrInvalidInput }

// InconsistencyError reports a stored derived value that disagrees with
// the recomputed value.
type InconsistencyError struct {
	What       string
	Stored     Money
	Recomputed Money
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("%s: stored %s differs from recomputed %s", e.What, e.Stored, e.Recomputed)
}

func (e *InconsistencyError) Unwrap() error { return ErrInconsistentState }

// TransitionError reports an attempted transition out of a terminal state.
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot transition from %s to %s", e.Entity, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// NotFoundError names the missing entity.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input
// rather than engine state.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrNotFound)
}

// IsNotFound returns true if the error indicates a missing entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
