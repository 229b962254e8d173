package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"pickup/internal/core/domain/model/cart"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/core/domain/services"
	"pickup/internal/core/ports"
	"pickup/internal/pkg/logger"
	"pickup/internal/pkg/metrics"

	"golang.org/x/sync/semaphore"
)

// SubmitOrderCommandHandler turns a cart into a stored order.
//
// The order is written in two steps, header then line items. The ordered lines
// leave the cart only after both writes succeed, so a failure never loses what
// the customer picked; lines added while the order was written stay in the cart. A handler admits one submission at a time: build one per
// customer session and a second concurrent Handle call gets
// ErrSubmissionInProgress instead of a duplicate order.
//
// Submission can be cancelled through ctx until the header write is issued.
// From then on both writes run to completion so that a cancelled request
// cannot leave a header behind without at least trying to write its lines.
//
// Example:
//
//	handler := commands.NewSubmitOrderCommandHandler(store, identity, services.NewDefaultTimeSlotGenerator(),
//	    time.Now, submissionMetrics, log)
//	cmd, _ := commands.NewSubmitOrderCommand(sessionCart, "12:15", "")
//
//	orderID, err := handler.Handle(ctx, cmd)
//	var partial *commands.PartialSubmissionError
//	if errors.As(err, &partial) {
//	    // header partial.HeaderID exists without lines; cart is intact
//	}
type SubmitOrderCommandHandler struct {
	store    ports.OrderStore
	identity ports.IdentityProvider
	slots    services.TimeSlotGenerator
	clock    Clock
	metrics  *metrics.SubmissionMetrics
	log      *logger.Logger

	inFlight *semaphore.Weighted
}

// NewSubmitOrderCommandHandler wires a handler. A nil clock falls back to
// time.Now, a nil logger discards output and nil metrics record nothing.
func NewSubmitOrderCommandHandler(
	store ports.OrderStore,
	identity ports.IdentityProvider,
	slots services.TimeSlotGenerator,
	clock Clock,
	submissionMetrics *metrics.SubmissionMetrics,
	log *logger.Logger,
) SubmitOrderCommandHandler {
	if clock == nil {
		clock = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}

	return SubmitOrderCommandHandler{
		store:    store,
		identity: identity,
		slots:    slots,
		clock:    clock,
		metrics:  submissionMetrics,
		log:      log,
		inFlight: semaphore.NewWeighted(1),
	}
}

// Handle validates the preconditions, writes the order and clears the cart.
//
// Preconditions are checked in this order and none of them touches the store:
// ErrSubmissionInProgress, ErrNotAuthenticated, ErrNoTimeSelected, ErrEmptyCart,
// ErrPickupTimeUnavailable. A failed header write returns ErrStoreUnavailable;
// a failed line write returns *PartialSubmissionError.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if !h.inFlight.TryAcquire(1) {
		h.metrics.IncOutcome(metrics.OutcomeInProgress)
		return kernel.UUID{}, ErrSubmissionInProgress
	}
	defer h.inFlight.Release(1)

	o, snapshot, err := h.prepare(ctx, cmd)
	if err != nil {
		h.metrics.IncOutcome(metrics.OutcomeRejected)
		return kernel.UUID{}, err
	}

	// Last point at which the caller can still abandon the submission.
	if err = ctx.Err(); err != nil {
		h.metrics.IncOutcome(metrics.OutcomeCanceled)
		return kernel.UUID{}, err
	}

	started := time.Now()
	defer func() {
		h.metrics.ObserveDuration(time.Since(started))
	}()

	writeCtx := context.WithoutCancel(ctx)

	headerID, err := h.store.CreateOrderHeader(writeCtx, o)
	if err != nil {
		h.metrics.IncOutcome(metrics.OutcomeStoreUnavailable)
		h.log.Error(ctx, "failed to create order header", err)
		return kernel.UUID{}, storeUnavailable(err)
	}

	logCtx := h.log.WithOrderID(ctx, headerID.String())

	if err = h.store.CreateOrderLines(writeCtx, headerID, o.Lines()); err != nil {
		h.metrics.IncOutcome(metrics.OutcomePartial)
		h.log.Error(logCtx, "order header stored without line items", err)
		return kernel.UUID{}, NewPartialSubmissionError(headerID, err)
	}

	cmd.Cart().ClearSubmitted(snapshot)

	h.metrics.IncOutcome(metrics.OutcomeSuccess)
	h.log.Info(logCtx, "order submitted")
	return headerID, nil
}

// prepare returns the order to write and the cart snapshot it was built from.
func (h *SubmitOrderCommandHandler) prepare(
	ctx context.Context,
	cmd SubmitOrderCommand,
) (*order.Order, cart.Snapshot, error) {
	userID, ok := h.identity.CurrentUser(ctx)
	if !ok {
		return nil, cart.Snapshot{}, ErrNotAuthenticated
	}

	pickup := strings.TrimSpace(cmd.PickupTime())
	if pickup == "" {
		return nil, cart.Snapshot{}, ErrNoTimeSelected
	}

	snapshot := cmd.Cart().Snapshot()
	if snapshot.IsEmpty() || snapshot.VendorID == nil {
		return nil, cart.Snapshot{}, ErrEmptyCart
	}

	now := h.clock()
	if !h.slots.IsAvailable(now, pickup) {
		return nil, cart.Snapshot{}, ErrPickupTimeUnavailable
	}

	pickupTime, err := kernel.ParseTimeOfDay(pickup)
	if err != nil {
		return nil, cart.Snapshot{}, errors.Join(ErrPickupTimeUnavailable, err)
	}

	o, err := newOrderFromSnapshot(userID, pickupTime, snapshot, cmd.Notes(), now)
	if err != nil {
		return nil, cart.Snapshot{}, err
	}
	return o, snapshot, nil
}

// newOrderFromSnapshot captures unit prices as they are in the cart now, so
// later catalog price changes never alter a submitted order.
func newOrderFromSnapshot(
	userID kernel.UUID,
	pickupTime kernel.TimeOfDay,
	snapshot cart.Snapshot,
	notes string,
	now time.Time,
) (*order.Order, error) {
	lines := make([]order.Line, 0, len(snapshot.Lines))
	for _, cartLine := range snapshot.Lines {
		line, err := order.NewLine(cartLine.Item.ID, cartLine.Quantity, cartLine.Item.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.NewOrder(kernel.NewUUID(), userID, *snapshot.VendorID, pickupTime, lines, notes, now)
}
