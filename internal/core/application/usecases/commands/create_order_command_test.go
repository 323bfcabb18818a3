package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrderDate() time.Time {
	return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, "Acme Corp", "123 Main Street", testOrderDate())
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "Acme Corp", cmd.ClientName())
	assert.Equal(t, "123 Main Street", cmd.DeliveryAddress())
	assert.Equal(t, testOrderDate(), cmd.OrderDate())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, "Acme Corp", "123 Main Street", testOrderDate())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyClientName(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "", "123 Main Street", testOrderDate())
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrClientNameIsRequired)
}

func TestNewCreateOrderCommand_EmptyDeliveryAddress(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Acme Corp", "", testOrderDate())
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)
}

func TestNewCreateOrderCommand_ZeroOrderDate(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Acme Corp", "123 Main Street", time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderDateIsRequired)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
