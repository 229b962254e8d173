package queries

import (
	"context"
	"time"

	"pickup/internal/core/domain/services"
)

type GetPickupSlotsQueryHandler struct {
	slots services.TimeSlotGenerator
	clock func() time.Time
}

// NewGetPickupSlotsQueryHandler uses clock for "now"; nil means time.Now.
func NewGetPickupSlotsQueryHandler(slots services.TimeSlotGenerator, clock func() time.Time) GetPickupSlotsQueryHandler {
	if clock == nil {
		clock = time.Now
	}

	return GetPickupSlotsQueryHandler{
		slots: slots,
		clock: clock,
	}
}

func (h GetPickupSlotsQueryHandler) Handle(
	_ context.Context,
	query GetPickupSlotsQuery,
) ([]GetPickupSlotsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	generated := h.slots.Generate(h.clock())
	result := make([]GetPickupSlotsQueryResponse, 0, len(generated))
	for _, slot := range generated {
		result = append(result, GetPickupSlotsQueryResponse{
			Value: slot.Value.String(),
			Label: slot.Label,
		})
	}

	return result, nil
}
