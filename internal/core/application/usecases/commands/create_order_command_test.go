package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	lines := []services.CartLine{{ProductID: kernel.NewUUID(), Quantity: 2}}

	cmd, err := commands.NewCreateOrderCommand(customerID, lines, "12 Main St")
	require.NoError(t, err)
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, lines, cmd.Lines())
	assert.Equal(t, "12 Main St", cmd.DeliveryAddress())
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID,
		[]services.CartLine{{ProductID: kernel.NewUUID(), Quantity: 1}}, "12 Main St")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyCart(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil, "12 Main St")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_NonPositiveQuantity(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(),
		[]services.CartLine{{ProductID: kernel.NewUUID(), Quantity: 0}}, "12 Main St")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrderCommand_EmptyDeliveryAddress(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(),
		[]services.CartLine{{ProductID: kernel.NewUUID(), Quantity: 1}}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
