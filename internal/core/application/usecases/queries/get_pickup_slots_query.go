package queries

import (
	"errors"

	"pickup/internal/pkg/guard"
)

var ErrGetPickupSlotsQueryIsNotConstructed = errors.New(
	"GetPickupSlotsQuery must be created via NewGetPickupSlotsQuery constructor",
)

// GetPickupSlotsQuery lists the pickup times that can be chosen right now.
// An empty result means ordering is closed for the day.
type GetPickupSlotsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPickupSlotsQuery() GetPickupSlotsQuery {
	return GetPickupSlotsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPickupSlotsQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupSlotsQueryIsNotConstructed)
}

// GetPickupSlotsQueryResponse carries the "HH:MM" value to submit and its label.
type GetPickupSlotsQueryResponse struct {
	Value string
	Label string
}
