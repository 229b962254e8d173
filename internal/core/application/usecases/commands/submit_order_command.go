package commands

import (
	"errors"

	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand asks to turn the contents of a cart into an order
// picked up at pickupTime ("HH:MM").
//
// A blank pickup time is accepted here; the handler reports it as
// ErrNoTimeSelected so that precondition failures come out in a fixed order.
//
// Example:
//
//	cmd, err := commands.NewSubmitOrderCommand(session.Cart(), "11:30", "no onions")
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	cart       CartStore
	pickupTime string
	notes      string

	guard guard.ConstructorGuard
}

func NewSubmitOrderCommand(cart CartStore, pickupTime, notes string) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		pickupTime: pickupTime,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}

	if err := cmd.setCart(cart); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

func (c SubmitOrderCommand) Cart() CartStore {
	return c.cart
}

func (c SubmitOrderCommand) PickupTime() string {
	return c.pickupTime
}

func (c SubmitOrderCommand) Notes() string {
	return c.notes
}

func (c *SubmitOrderCommand) setCart(cart CartStore) error {
	if cart == nil {
		return errs.NewValueIsRequiredError("cart")
	}

	c.cart = cart
	return nil
}
