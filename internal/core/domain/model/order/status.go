package order

import (
	"fmt"

	"pickup/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> Completed
//	   │
//	   └──> Cancelled
//
// The ordering core itself only creates Pending orders and moves them to
// Cancelled; the remaining transitions belong to the vendor side of the store.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	Ready
	Completed
	Cancelled
)

func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// ParseStatus maps the stored lowercase name back to a Status.
func ParseStatus(value string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name used in storage and APIs, or "unknown".
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateCancel checks that the status allows cancellation without changing it.
func (s Status) ValidateCancel() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return nil
}

// Cancel transitions Pending to Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateCancel(); err != nil {
		return 0, err
	}

	return Cancelled, nil
}
