package commands_test

import (
	"errors"
	"testing"
	"time"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/core/ports"
	"pickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSweepOrphanedOrdersCommandHandler_Handle(t *testing.T) {
	cutoff := fixedClock().Add(-15 * time.Minute)

	t.Run("cancels every orphaned header", func(t *testing.T) {
		first, second := kernel.NewUUID(), kernel.NewUUID()

		store := new(MockOrderStore)
		mock.InOrder(
			store.On("ListOrphanedOrderIDs", mock.Anything, cutoff).Return([]kernel.UUID{first, second}, nil).Once(),
			store.On("UpdateOrderStatus", mock.Anything, first, order.Pending, order.Cancelled).Return(nil).Once(),
			store.On("UpdateOrderStatus", mock.Anything, second, order.Pending, order.Cancelled).Return(nil).Once(),
		)

		h := commands.NewSweepOrphanedOrdersCommandHandler(store, fixedClock, nil)
		cmd, _ := commands.NewSweepOrphanedOrdersCommand(15 * time.Minute)

		swept, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, swept)
		store.AssertExpectations(t)
	})

	t.Run("keeps going after a failed update", func(t *testing.T) {
		first, second := kernel.NewUUID(), kernel.NewUUID()

		store := new(MockOrderStore)
		store.On("ListOrphanedOrderIDs", mock.Anything, cutoff).Return([]kernel.UUID{first, second}, nil).Once()
		store.On("UpdateOrderStatus", mock.Anything, first, order.Pending, order.Cancelled).Return(errors.New("deadlock")).Once()
		store.On("UpdateOrderStatus", mock.Anything, second, order.Pending, order.Cancelled).Return(nil).Once()

		h := commands.NewSweepOrphanedOrdersCommandHandler(store, fixedClock, nil)
		cmd, _ := commands.NewSweepOrphanedOrdersCommand(15 * time.Minute)

		swept, err := h.Handle(t.Context(), cmd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), first.String())
		assert.Equal(t, 1, swept)
		store.AssertExpectations(t)
	})

	t.Run("skips headers that moved on since the scan", func(t *testing.T) {
		first, second := kernel.NewUUID(), kernel.NewUUID()

		store := new(MockOrderStore)
		store.On("ListOrphanedOrderIDs", mock.Anything, cutoff).Return([]kernel.UUID{first, second}, nil).Once()
		store.On("UpdateOrderStatus", mock.Anything, first, order.Pending, order.Cancelled).
			Return(ports.ErrOrderStatusChanged).Once()
		store.On("UpdateOrderStatus", mock.Anything, second, order.Pending, order.Cancelled).Return(nil).Once()

		h := commands.NewSweepOrphanedOrdersCommandHandler(store, fixedClock, nil)
		cmd, _ := commands.NewSweepOrphanedOrdersCommand(15 * time.Minute)

		swept, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, swept)
		store.AssertExpectations(t)
	})

	t.Run("nothing to sweep", func(t *testing.T) {
		store := new(MockOrderStore)
		store.On("ListOrphanedOrderIDs", mock.Anything, cutoff).Return([]kernel.UUID{}, nil).Once()

		h := commands.NewSweepOrphanedOrdersCommandHandler(store, fixedClock, nil)
		cmd, _ := commands.NewSweepOrphanedOrdersCommand(15 * time.Minute)

		swept, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Zero(t, swept)
	})

	t.Run("list failure", func(t *testing.T) {
		store := new(MockOrderStore)
		store.On("ListOrphanedOrderIDs", mock.Anything, cutoff).Return([]kernel.UUID(nil), errors.New("down")).Once()

		h := commands.NewSweepOrphanedOrdersCommandHandler(store, fixedClock, nil)
		cmd, _ := commands.NewSweepOrphanedOrdersCommand(15 * time.Minute)

		_, err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, commands.ErrStoreUnavailable)
	})
}

func TestNewSweepOrphanedOrdersCommand_InvalidMaxAge(t *testing.T) {
	_, err := commands.NewSweepOrphanedOrdersCommand(0)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
