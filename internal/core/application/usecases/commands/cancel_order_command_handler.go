package commands

import (
	"context"
	"errors"
	"fmt"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/core/ports"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/logger"
)

// CancelOrderCommandHandler cancels a pending order of the current user.
//
// Cancelling an order that is already cancelled succeeds without a write.
// An order that belongs to somebody else is reported as not found.
type CancelOrderCommandHandler struct {
	store    ports.OrderStore
	identity ports.IdentityProvider
	log      *logger.Logger
}

func NewCancelOrderCommandHandler(
	store ports.OrderStore,
	identity ports.IdentityProvider,
	log *logger.Logger,
) CancelOrderCommandHandler {
	if log == nil {
		log = logger.Nop()
	}

	return CancelOrderCommandHandler{
		store:    store,
		identity: identity,
		log:      log,
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	userID, ok := h.identity.CurrentUser(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	o, err := h.store.GetOrder(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		return storeUnavailable(err)
	}

	if !o.IsOwnedBy(userID) {
		return errs.NewObjectNotFoundError("order id", cmd.OrderID())
	}

	if o.Status() == order.Cancelled {
		return nil
	}

	from := o.Status()
	if err = o.Cancel(); err != nil {
		return fmt.Errorf("%w: %w", ErrOrderCannotBeCancelled, err)
	}

	err = h.store.UpdateOrderStatus(ctx, o.ID(), from, o.Status())
	switch {
	case errors.Is(err, ports.ErrOrderStatusChanged):
		return h.afterConflict(ctx, o.ID())
	case errors.Is(err, errs.ErrObjectNotFound):
		return err
	case err != nil:
		return storeUnavailable(err)
	}

	h.log.Info(h.log.WithOrderID(ctx, o.ID().String()), "order cancelled")
	return nil
}

// afterConflict decides the outcome once the order moved on between the read
// and the write: someone else cancelling it is fine, anything else is not.
func (h *CancelOrderCommandHandler) afterConflict(ctx context.Context, orderID kernel.UUID) error {
	current, err := h.store.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		return storeUnavailable(err)
	}

	if current.Status() == order.Cancelled {
		return nil
	}
	return fmt.Errorf("%w: order is %s", ErrOrderCannotBeCancelled, current.Status())
}
