package commands_test

import (
	"testing"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/domain/model/cart"
	"pickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitOrderCommand_ValidInput(t *testing.T) {
	c := cart.New()

	cmd, err := commands.NewSubmitOrderCommand(c, "11:45", "no ice")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Same(t, c, cmd.Cart())
	assert.Equal(t, "11:45", cmd.PickupTime())
	assert.Equal(t, "no ice", cmd.Notes())
}

func TestNewSubmitOrderCommand_BlankPickupTimeIsAccepted(t *testing.T) {
	_, err := commands.NewSubmitOrderCommand(cart.New(), "", "")

	require.NoError(t, err)
}

func TestNewSubmitOrderCommand_NilCart(t *testing.T) {
	_, err := commands.NewSubmitOrderCommand(nil, "11:45", "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestSubmitOrderCommand_ZeroValue(t *testing.T) {
	assert.ErrorIs(t, commands.SubmitOrderCommand{}.Validate(), commands.ErrSubmitOrderCommandIsNotConstructed)
}
