package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxNotesLength bounds the free-text notes a customer can attach.
const MaxNotesLength = 500

// MaxTotalAmount is the largest total the order store can keep: ten digits,
// two of them after the point.
var MaxTotalAmount = decimal.RequireFromString("99999999.99")

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root of a pickup order.
//
// Order follows these invariants:
//   - IDs of the order, the user and the vendor are valid
//   - The pickup time is a valid time of day
//   - A new order has at least one line, its total equals the sum of the lines and it is pending
//   - Status transitions follow Status
type Order struct {
	id       kernel.UUID
	userID   kernel.UUID
	vendorID kernel.UUID

	pickupTime  kernel.TimeOfDay
	totalAmount decimal.Decimal
	notes       string

	status    Status
	createdAt time.Time
	lines     []Line

	isConstructed bool
}

// NewOrder builds a pending order whose total is derived from lines.
//
// Example:
//
//	line, _ := order.NewLine(itemID, 2, decimal.RequireFromString("8.50"))
//	o, err := order.NewOrder(kernel.NewUUID(), userID, vendorID, pickup, []order.Line{line}, "no onions", now)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id, userID, vendorID kernel.UUID,
	pickupTime kernel.TimeOfDay,
	lines []Line,
	notes string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setVendorID(vendorID),
		o.setPickupTime(pickupTime),
		o.setLines(lines),
		o.setNotes(notes),
	); err != nil {
		return nil, err
	}

	o.totalAmount = sumLines(o.lines)
	if o.totalAmount.GreaterThan(MaxTotalAmount) {
		return nil, errs.NewValueIsOutOfRangeError("total amount", o.totalAmount.String(), "0", MaxTotalAmount.String())
	}
	return o, nil
}

// RestoreOrder rebuilds an order read from storage. Unlike NewOrder it accepts
// any valid status, a stored total and an empty line list: a header whose line
// items were never written is still a valid stored order.
func RestoreOrder(
	id, userID, vendorID kernel.UUID,
	pickupTime kernel.TimeOfDay,
	totalAmount decimal.Decimal,
	notes string,
	status Status,
	createdAt time.Time,
	lines []Line,
) (*Order, error) {
	o := &Order{
		totalAmount:   totalAmount,
		notes:         notes,
		createdAt:     createdAt.UTC(),
		lines:         slices.Clone(lines),
		isConstructed: true,
	}

	var errTotal error
	if totalAmount.IsNegative() {
		errTotal = errs.NewValueIsInvalidErrorWithCause(
			"total amount is invalid", fmt.Errorf("%s is negative", totalAmount))
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setVendorID(vendorID),
		o.setPickupTime(pickupTime),
		o.setStatus(status),
		errTotal,
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) UserID() kernel.UUID {
	return o.userID
}

func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

func (o *Order) PickupTime() kernel.TimeOfDay {
	return o.pickupTime
}

func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Notes returns the customer notes, or "" when none were given.
func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Lines returns a copy of the order's line items.
func (o *Order) Lines() []Line {
	return slices.Clone(o.lines)
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// Cancel moves a pending order to Cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if userID.IsZero() {
		return errs.NewValueIsRequiredError("user id")
	}
	o.userID = userID
	return nil
}

func (o *Order) setVendorID(vendorID kernel.UUID) error {
	if vendorID.IsZero() {
		return errs.NewValueIsRequiredError("vendor id")
	}
	o.vendorID = vendorID
	return nil
}

func (o *Order) setPickupTime(pickupTime kernel.TimeOfDay) error {
	if err := pickupTime.Validate(); err != nil {
		return err
	}
	o.pickupTime = pickupTime
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	for _, line := range lines {
		if err := line.itemID.Validate(); err != nil {
			return err
		}
	}
	o.lines = slices.Clone(lines)
	return nil
}

func (o *Order) setNotes(notes string) error {
	notes = strings.TrimSpace(notes)
	if len([]rune(notes)) > MaxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes length", len([]rune(notes)), 0, MaxNotesLength)
	}
	o.notes = notes
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func sumLines(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}
