// Package ports defines the contracts between the ordering core and the
// systems it depends on: the durable Order Store and the identity of the
// current user. Adapters under internal/adapters implement them.
package ports

import (
	"context"
	"errors"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
)

// ErrOrderStatusChanged is returned by UpdateOrderStatus when the order is no
// longer in the expected status, typically because the vendor moved it on.
var ErrOrderStatusChanged = errors.New("order status changed concurrently")

// OrderStore is the durable record of submitted orders.
//
// Header and lines are written by two separate calls. Nothing ties them into
// one transaction, so a header without lines can exist after a failed second
// write; ListOrphanedOrderIDs lets maintenance find those headers.
type OrderStore interface {
	// CreateOrderHeader stores the order header in Pending status and returns its identifier.
	CreateOrderHeader(ctx context.Context, o *order.Order) (kernel.UUID, error)

	// CreateOrderLines stores the line items of an existing header.
	CreateOrderLines(ctx context.Context, orderID kernel.UUID, lines []order.Line) error

	// UpdateOrderStatus moves an order from status from to status to in one
	// conditional write. Returns ErrOrderStatusChanged if the order is not in
	// status from, and *errs.ObjectNotFoundError if it does not exist.
	UpdateOrderStatus(ctx context.Context, orderID kernel.UUID, from, to order.Status) error

	// GetOrder returns an order with its lines.
	// Returns *errs.ObjectNotFoundError if the order does not exist.
	GetOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error)

	// ListOrdersForUser returns the orders placed by userID, newest first.
	ListOrdersForUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// ListOrphanedOrderIDs returns pending headers created before createdBefore
	// that have no line items.
	ListOrphanedOrderIDs(ctx context.Context, createdBefore time.Time) ([]kernel.UUID, error)
}
