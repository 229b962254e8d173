package queries

import (
	"context"
	"fmt"

	"pickup/internal/core/domain/model/order"
	"pickup/internal/core/ports"
)

// ListUserOrdersQueryHandler reads the current user's orders from the Order Store.
type ListUserOrdersQueryHandler struct {
	store    ports.OrderStore
	identity ports.IdentityProvider
}

func NewListUserOrdersQueryHandler(store ports.OrderStore, identity ports.IdentityProvider) ListUserOrdersQueryHandler {
	return ListUserOrdersQueryHandler{
		store:    store,
		identity: identity,
	}
}

// Handle keeps the store's newest-first order.
func (h ListUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListUserOrdersQuery,
) ([]ListUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	userID, ok := h.identity.CurrentUser(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	orders, err := h.store.ListOrdersForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	result := make([]ListUserOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, toListUserOrdersResponse(o))
	}

	return result, nil
}

func toListUserOrdersResponse(o *order.Order) ListUserOrdersQueryResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLineResponse{
			ItemID:    line.ItemID(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
		})
	}

	return ListUserOrdersQueryResponse{
		ID:          o.ID(),
		VendorID:    o.VendorID(),
		PickupTime:  o.PickupTime().String(),
		PickupLabel: o.PickupTime().Label(),
		TotalAmount: o.TotalAmount(),
		Notes:       o.Notes(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
		Cancellable: o.Status().ValidateCancel() == nil,
		Lines:       lines,
	}
}
