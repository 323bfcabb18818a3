package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "UnAssigned", order.UnAssigned.String())
	assert.Equal(t, "Assigned", order.Assigned.String())
	assert.Equal(t, "OutForDelivery", order.OutForDelivery.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	for _, expected := range []order.Status{
		order.UnAssigned, order.Assigned, order.OutForDelivery, order.Delivered, order.Cancelled,
	} {
		parsed, err := order.StatusFromString(expected.String())
		require.NoError(t, err)
		assert.Equal(t, expected, parsed)
	}

	_, err := order.StatusFromString("Unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.StatusFromString("delivered")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.UnAssigned.Validate())
	require.NoError(t, order.Cancelled.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.UnAssigned.IsTerminal())
	assert.False(t, order.Assigned.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.UnAssigned:     {order.Assigned, order.Cancelled},
		order.Assigned:       {order.OutForDelivery, order.Delivered, order.Cancelled, order.UnAssigned},
		order.OutForDelivery: {order.Delivered, order.Cancelled, order.UnAssigned},
		order.Delivered:      {},
		order.Cancelled:      {},
	}
	all := []order.Status{
		order.UnAssigned, order.Assigned, order.OutForDelivery, order.Delivered, order.Cancelled,
	}

	for from, nexts := range allowed {
		permitted := make(map[order.Status]bool, len(nexts))
		for _, next := range nexts {
			permitted[next] = true
		}

		for _, to := range all {
			got, err := from.TransitionTo(to)
			if permitted[to] {
				require.NoError(t, err, "%s -> %s should be permitted", from, to)
				assert.Equal(t, to, got)
			} else {
				require.ErrorIs(t, err, errs.ErrInvalidTransition, "%s -> %s should be rejected", from, to)
				assert.Equal(t, order.Unknown, got)
			}
		}
	}
}

func TestStatus_TransitionTo_InvalidTarget(t *testing.T) {
	_, err := order.UnAssigned.TransitionTo(order.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
