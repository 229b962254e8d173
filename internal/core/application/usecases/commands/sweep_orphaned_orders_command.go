package commands

import (
	"errors"
	"time"

	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var ErrSweepOrphanedOrdersCommandIsNotConstructed = errors.New(
	"SweepOrphanedOrdersCommand must be created via NewSweepOrphanedOrdersCommand constructor",
)

// SweepOrphanedOrdersCommand asks to cancel pending order headers older than
// maxAge that never got their line items.
type SweepOrphanedOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

func NewSweepOrphanedOrdersCommand(maxAge time.Duration) (SweepOrphanedOrdersCommand, error) {
	cmd := SweepOrphanedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMaxAge(maxAge); err != nil {
		return SweepOrphanedOrdersCommand{}, err
	}

	return cmd, nil
}

func (c SweepOrphanedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSweepOrphanedOrdersCommandIsNotConstructed)
}

func (c SweepOrphanedOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *SweepOrphanedOrdersCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return errs.NewValueIsOutOfRangeError("max age", maxAge, "1ns", "unbounded")
	}

	c.maxAge = maxAge
	return nil
}
