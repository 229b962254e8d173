package order_test

import (
	"strings"
	"testing"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, quantity int, price string) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), quantity, decimal.RequireFromString(price))
	require.NoError(t, err)
	return line
}

func TestNewLine(t *testing.T) {
	t.Run("valid line", func(t *testing.T) {
		itemID := kernel.NewUUID()
		line, err := order.NewLine(itemID, 3, decimal.RequireFromString("2.50"))

		require.NoError(t, err)
		assert.True(t, line.ItemID().IsEqual(itemID))
		assert.Equal(t, 3, line.Quantity())
		assert.True(t, decimal.RequireFromString("7.50").Equal(line.Subtotal()))
	})

	t.Run("collects every violation", func(t *testing.T) {
		_, err := order.NewLine(kernel.UUID{}, 0, decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID")
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "unit price is invalid")
	})

	t.Run("rejects a quantity the store cannot keep", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), order.MaxQuantity+1, decimal.NewFromInt(1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewOrder(t *testing.T) {
	id, userID, vendorID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	pickup := kernel.MustTimeOfDay(11, 30)
	now := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

	t.Run("creates a pending order with derived total", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 2, "8.50"), mustLine(t, 1, "3.25")}

		o, err := order.NewOrder(id, userID, vendorID, pickup, lines, "  extra napkins ", now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, decimal.RequireFromString("20.25").Equal(o.TotalAmount()))
		assert.Equal(t, "extra napkins", o.Notes())
		assert.Equal(t, "11:30", o.PickupTime().String())
		assert.True(t, o.IsOwnedBy(userID))
		assert.Equal(t, now, o.CreatedAt())
		assert.Len(t, o.Lines(), 2)
	})

	t.Run("rejects missing parts", func(t *testing.T) {
		_, err := order.NewOrder(id, kernel.UUID{}, kernel.UUID{}, kernel.TimeOfDay{}, nil, "", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "user id")
		assert.Contains(t, err.Error(), "vendor id")
		assert.Contains(t, err.Error(), "order lines")
	})

	t.Run("rejects overly long notes", func(t *testing.T) {
		notes := strings.Repeat("x", order.MaxNotesLength+1)

		_, err := order.NewOrder(id, userID, vendorID, pickup, []order.Line{mustLine(t, 1, "1")}, notes, now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects a total the store cannot keep", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 999, "10000.00"), mustLine(t, 9001, "10000.00")}

		_, err := order.NewOrder(id, userID, vendorID, pickup, lines, "", now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "total amount")
	})

	t.Run("lines are copied", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 1, "1")}
		o, err := order.NewOrder(id, userID, vendorID, pickup, lines, "", now)
		require.NoError(t, err)

		lines[0] = mustLine(t, 9, "9")

		assert.Equal(t, 1, o.Lines()[0].Quantity())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("accepts a header without lines", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.MustTimeOfDay(12, 0), decimal.RequireFromString("14.00"), "",
			order.Confirmed, time.Now(), nil,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Empty(t, o.Lines())
	})

	t.Run("rejects unknown status and negative total", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.MustTimeOfDay(12, 0), decimal.NewFromInt(-1), "",
			order.Unknown, time.Now(), nil,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "total amount is invalid")
	})
}

func TestOrder_Cancel(t *testing.T) {
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.MustTimeOfDay(13, 0), []order.Line{mustLine(t, 1, "5")}, "", time.Now(),
	)
	require.NoError(t, err)

	require.NoError(t, o.Cancel())
	assert.Equal(t, order.Cancelled, o.Status())

	require.Error(t, o.Cancel())
	assert.Equal(t, order.Cancelled, o.Status())
}

func TestOrder_ValidateZeroValue(t *testing.T) {
	var o *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
}
