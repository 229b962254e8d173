// Package queries contains read-only operations of the ordering core.
package queries

import (
	"errors"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListUserOrdersQueryIsNotConstructed = errors.New(
		"ListUserOrdersQuery must be created via NewListUserOrdersQuery constructor",
	)
	ErrNotAuthenticated = errors.New("user is not authenticated")
	ErrStoreUnavailable = errors.New("order store is unavailable")
)

// ListUserOrdersQuery lists the orders of the current user, newest first.
//
// Example:
//
//	query := queries.NewListUserOrdersQuery()
//	orders, err := handler.Handle(ctx, query)
//	if errors.Is(err, queries.ErrNotAuthenticated) {
//	    // redirect to sign in
//	}
type ListUserOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListUserOrdersQuery() ListUserOrdersQuery {
	return ListUserOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUserOrdersQueryIsNotConstructed)
}

// ListUserOrdersQueryResponse is one order as shown on the order history page.
type ListUserOrdersQueryResponse struct {
	ID          kernel.UUID
	VendorID    kernel.UUID
	PickupTime  string
	PickupLabel string
	TotalAmount decimal.Decimal
	Notes       string
	Status      string
	CreatedAt   time.Time
	Cancellable bool
	Lines       []OrderLineResponse
}

type OrderLineResponse struct {
	ItemID    kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}
