package queries_test

import (
	"testing"
	"time"

	"pickup/internal/core/application/usecases/queries"
	"pickup/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPickupSlotsQueryHandler_Handle(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantFirst string
		wantCount int
	}{
		{"before opening", time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC), "11:00 AM", 13},
		{"during service", time.Date(2026, 10, 16, 12, 5, 0, 0, time.UTC), "12:30 PM", 7},
		{"too late", time.Date(2026, 10, 16, 13, 50, 0, 0, time.UTC), "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := queries.NewGetPickupSlotsQueryHandler(services.NewDefaultTimeSlotGenerator(),
				func() time.Time { return tt.now })

			result, err := h.Handle(t.Context(), queries.NewGetPickupSlotsQuery())

			require.NoError(t, err)
			require.Len(t, result, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, result[0].Label)
				assert.Equal(t, "14:00", result[len(result)-1].Value)
			}
		})
	}
}

func TestGetPickupSlotsQueryHandler_Handle_ZeroQuery(t *testing.T) {
	h := queries.NewGetPickupSlotsQueryHandler(services.NewDefaultTimeSlotGenerator(), nil)

	_, err := h.Handle(t.Context(), queries.GetPickupSlotsQuery{})

	require.ErrorIs(t, err, queries.ErrGetPickupSlotsQueryIsNotConstructed)
}
