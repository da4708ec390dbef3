package order

import (
	"fmt"

	"dinein/internal/pkg/errs"
)

// Status represents the lifecycle state of a dine-in order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct service workflow.
//
// State transitions:
//
//	Waiting ──> Accepted ──> Served ──> Completed
//
// Every transition is one-directional and non-repeatable; attempting a
// transition from any other state fails with an invalid state error.
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Waiting is the initial status assigned at order creation.
	// Orders in this status are waiting to be accepted by the restaurant.
	Waiting

	// Accepted indicates the restaurant has accepted the order.
	Accepted

	// Served indicates the order has been brought to the table.
	Served

	// Completed indicates the guests have finished the order.
	// This is a final state with no further transitions allowed; completed
	// orders are never mutated again.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Waiting:   "Waiting",
		Accepted:  "Accepted",
		Served:    "Served",
		Completed: "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Waiting:   "Waiting",
		Accepted:  "Accepted",
		Served:    "Served",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Waiting, Accepted, Served, Completed.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsCompleted reports whether the status is the terminal Completed state.
func (s Status) IsCompleted() bool {
	return s == Completed
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Waiting -> Accepted
//
// Any other source status fails with an InvalidStateError.
//
// Returns:
//   - (Accepted, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Accept() (Status, error) {
	if s != Waiting {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order cannot be accepted",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}

	return Accepted, nil
}

// Serve transitions the status to Served.
//
// Valid transitions:
//   - Accepted -> Served
//
// Any other source status fails with an InvalidStateError.
//
// Returns:
//   - (Served, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Serve() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order cannot be served",
			fmt.Errorf("%s is not a valid status to serve", s.String()),
		)
	}

	return Served, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Served -> Completed
//
// Any other source status fails with an InvalidStateError. Completed is a
// final state with no further transitions possible.
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Complete() (Status, error) {
	if s != Served {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order cannot be completed",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
