// Package commands contains the operations that change the state of the
// ordering core: submitting a cart as an order, cancelling a pending order and
// sweeping headers left behind by a failed submission.
//
// Every command is built through its constructor and checked by the handler
// with Validate before any collaborator is called.
package commands

import (
	"time"

	"pickup/internal/core/domain/model/cart"
)

type (
	// CartStore is the part of a customer's cart the submission needs:
	// a point-in-time copy to build the order from and a way to take the
	// ordered lines out once the order is durable. The cart may change while
	// the order is written; ClearSubmitted keeps whatever was not ordered.
	CartStore interface {
		Snapshot() cart.Snapshot
		ClearSubmitted(submitted cart.Snapshot)
	}

	// Clock supplies "now" in the vendor's local time.
	Clock func() time.Time
)
