package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pickup/internal/core/domain/model/order"
	"pickup/internal/core/ports"
	"pickup/internal/pkg/logger"
)

// SweepOrphanedOrdersCommandHandler cancels order headers whose line items
// were never written. Such headers are the leftovers of a partial submission;
// the customer still has the cart and can submit again.
type SweepOrphanedOrdersCommandHandler struct {
	store ports.OrderStore
	clock Clock
	log   *logger.Logger
}

func NewSweepOrphanedOrdersCommandHandler(
	store ports.OrderStore,
	clock Clock,
	log *logger.Logger,
) SweepOrphanedOrdersCommandHandler {
	if clock == nil {
		clock = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}

	return SweepOrphanedOrdersCommandHandler{
		store: store,
		clock: clock,
		log:   log,
	}
}

// Handle returns the number of headers it cancelled. A failure on one header
// does not stop the others; all failures are joined into the returned error.
func (h *SweepOrphanedOrdersCommandHandler) Handle(ctx context.Context, cmd SweepOrphanedOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	ids, err := h.store.ListOrphanedOrderIDs(ctx, h.clock().Add(-cmd.MaxAge()))
	if err != nil {
		return 0, storeUnavailable(err)
	}

	var (
		swept    int
		failures []error
	)
	for _, id := range ids {
		if err = ctx.Err(); err != nil {
			failures = append(failures, err)
			break
		}

		err = h.store.UpdateOrderStatus(ctx, id, order.Pending, order.Cancelled)
		if errors.Is(err, ports.ErrOrderStatusChanged) {
			// Moved on by someone else since the scan.
			continue
		}
		if err != nil {
			failures = append(failures, fmt.Errorf("order %s: %w", id, err))
			continue
		}

		h.log.Warn(h.log.WithOrderID(ctx, id.String()), "cancelled order header without line items")
		swept++
	}

	return swept, errors.Join(failures...)
}
