package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a
// two-state machine with a single transition:
//
//	Placed ──> Cancelled
//
// Cancelled is terminal; an order is never un-cancelled and a cancelled
// order cannot be cancelled again.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status set atomically when an order is created.
	Placed

	// Cancelled indicates the order was cancelled and its stock released.
	// This is a final state with no further transitions allowed.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Placed:    "Placed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:    "Placed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid. Valid statuses are Placed
// and Cancelled; Unknown (0) and any other values are invalid. Used to vet
// Status values arriving from persistence or external callers.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its string representation, as
// stored in the orders table.
func StatusFromString(str string) (Status, error) {
	for status, s := range getValidStatusStrings() {
		if s == str {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", str))
}

// Cancel transitions the status to Cancelled.
//
// The only valid transition is Placed -> Cancelled. Cancelling an already
// cancelled order fails, which is what guards the aggregate against
// releasing stock twice.
func (s Status) Cancel() (Status, error) {
	if s != Placed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
