package commands

import (
	"errors"
	"fmt"

	"pickup/internal/core/domain/model/kernel"
)

var (
	ErrNotAuthenticated      = errors.New("user is not authenticated")
	ErrNoTimeSelected        = errors.New("pickup time is not selected")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrSubmissionInProgress  = errors.New("another order submission is in progress")
	ErrPickupTimeUnavailable = errors.New("pickup time is no longer available")
	ErrStoreUnavailable      = errors.New("order store is unavailable")
	ErrPartialSubmission     = errors.New("order was only partially submitted")

	ErrOrderCannotBeCancelled = errors.New("order cannot be cancelled")
)

// PartialSubmissionError reports that the order header was stored but its
// line items were not. HeaderID names the orphaned header.
type PartialSubmissionError struct {
	HeaderID kernel.UUID
	Cause    error
}

func NewPartialSubmissionError(headerID kernel.UUID, cause error) *PartialSubmissionError {
	return &PartialSubmissionError{
		HeaderID: headerID,
		Cause:    cause,
	}
}

func (e *PartialSubmissionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: header %s was stored without line items (cause: %v)",
			ErrPartialSubmission, e.HeaderID, e.Cause)
	}
	return fmt.Sprintf("%s: header %s was stored without line items", ErrPartialSubmission, e.HeaderID)
}

// Unwrap matches both ErrPartialSubmission and the store failure.
func (e *PartialSubmissionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrPartialSubmission}
	}
	return []error{ErrPartialSubmission, e.Cause}
}

func storeUnavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
