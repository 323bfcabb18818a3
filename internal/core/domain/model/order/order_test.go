package order_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderDate() time.Time {
	return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
}

func TestNewOrder(t *testing.T) {
	t.Run("valid order starts unassigned", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, "Acme Corp", "12 Main St", orderDate())
		require.NoError(t, err)

		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "Acme Corp", o.ClientName())
		assert.Equal(t, "12 Main St", o.DeliveryAddress())
		assert.Equal(t, orderDate(), o.OrderDate())
		assert.Equal(t, order.UnAssigned, o.Status())
		assert.False(t, o.CreatedAt().IsZero())
		require.NoError(t, o.Validate())
	})

	t.Run("order date is truncated to the calendar day", func(t *testing.T) {
		withTime := time.Date(2025, 6, 15, 17, 30, 12, 0, time.UTC)

		o, err := order.NewOrder(kernel.NewUUID(), "Acme Corp", "12 Main St", withTime)
		require.NoError(t, err)
		assert.Equal(t, orderDate(), o.OrderDate())
	})

	t.Run("validation failures", func(t *testing.T) {
		testCases := []struct {
			name    string
			id      kernel.UUID
			client  string
			address string
			date    time.Time
		}{
			{"zero id", kernel.UUID{}, "Acme Corp", "12 Main St", orderDate()},
			{"empty client name", kernel.NewUUID(), "", "12 Main St", orderDate()},
			{"empty address", kernel.NewUUID(), "Acme Corp", "", orderDate()},
			{"zero order date", kernel.NewUUID(), "Acme Corp", "12 Main St", time.Time{}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewOrder(tc.id, tc.client, tc.address, tc.date)
				require.Error(t, err)
			})
		}
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	o, err := order.RestoreOrder(id, "Acme Corp", "12 Main St", orderDate(), createdAt, order.OutForDelivery)
	require.NoError(t, err)

	assert.Equal(t, order.OutForDelivery, o.Status())
	assert.Equal(t, createdAt, o.CreatedAt())

	_, err = order.RestoreOrder(id, "Acme Corp", "12 Main St", orderDate(), createdAt, order.Unknown)
	require.Error(t, err)
}

func TestOrder_Validate_ZeroValue(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("assign, out for delivery, deliver", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Assign())
		assert.Equal(t, order.Assigned, o.Status())

		require.NoError(t, o.MarkOutForDelivery())
		assert.Equal(t, order.OutForDelivery, o.Status())

		require.NoError(t, o.Deliver())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("release returns an assigned order to unassigned", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Assign())

		require.NoError(t, o.Release())
		assert.Equal(t, order.UnAssigned, o.Status())
	})

	t.Run("cancel from every non-terminal status", func(t *testing.T) {
		prepare := map[string]func(*order.Order){
			"UnAssigned":     func(*order.Order) {},
			"Assigned":       func(o *order.Order) { _ = o.Assign() },
			"OutForDelivery": func(o *order.Order) { _ = o.Assign(); _ = o.MarkOutForDelivery() },
		}

		for name, setup := range prepare {
			t.Run(name, func(t *testing.T) {
				o := newTestOrder(t)
				setup(o)

				require.NoError(t, o.Cancel())
				assert.Equal(t, order.Cancelled, o.Status())
			})
		}
	})

	t.Run("terminal statuses reject further transitions", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Assign())
		require.NoError(t, o.Deliver())

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Assign(), errs.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("deliver requires an assignment first", func(t *testing.T) {
		o := newTestOrder(t)
		require.ErrorIs(t, o.Deliver(), errs.ErrInvalidTransition)
		assert.Equal(t, order.UnAssigned, o.Status())
	})
}

func TestOrder_UpdateDetails(t *testing.T) {
	o := newTestOrder(t)
	createdAt := o.CreatedAt()

	newDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, o.UpdateDetails("Beta Ltd", "9 Side Rd", newDate))

	assert.Equal(t, "Beta Ltd", o.ClientName())
	assert.Equal(t, "9 Side Rd", o.DeliveryAddress())
	assert.Equal(t, newDate, o.OrderDate())
	assert.Equal(t, createdAt, o.CreatedAt())
	assert.Equal(t, order.UnAssigned, o.Status())

	require.Error(t, o.UpdateDetails("", "9 Side Rd", newDate))
}

func TestOrder_IsEqual(t *testing.T) {
	a := newTestOrder(t)
	b := newTestOrder(t)

	assert.False(t, a.IsEqual(b))
	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(nil))
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "Acme Corp", "12 Main St", orderDate())
	require.NoError(t, err)
	return o
}
