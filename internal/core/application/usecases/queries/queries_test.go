package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrdersQuery_Filters(t *testing.T) {
	q := queries.NewListOrdersQuery()
	require.NoError(t, q.Validate())
	assert.Nil(t, q.Status())
	_, ok := q.ClientNamePart()
	assert.False(t, ok)

	q = q.WithStatus(order.UnAssigned).WithClientName("acme")
	require.NoError(t, q.Validate())
	require.NotNil(t, q.Status())
	assert.Equal(t, order.UnAssigned, *q.Status())
	part, ok := q.ClientNamePart()
	assert.True(t, ok)
	assert.Equal(t, "acme", part)
}

func TestListOrdersQuery_NotConstructed(t *testing.T) {
	var q queries.ListOrdersQuery
	require.ErrorIs(t, q.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
}

func TestNewGetOrderQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetOrderQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()
	q, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.True(t, q.OrderID().IsEqual(id))
}

func TestListDeliveryPersonsQuery_AvailableOnly(t *testing.T) {
	q := queries.NewListDeliveryPersonsQuery()
	require.NoError(t, q.Validate())
	assert.False(t, q.IsAvailableOnly())
	assert.True(t, q.AvailableOnly().IsAvailableOnly())
}

func TestListAssignmentsQuery_Filters(t *testing.T) {
	q := queries.NewListAssignmentsQuery().
		WithStatus(assignment.Pending).
		WithDeliveryPersonName("John Doe").
		WithClientName("acme")
	require.NoError(t, q.Validate())

	require.NotNil(t, q.Status())
	assert.Equal(t, assignment.Pending, *q.Status())

	name, ok := q.DeliveryPersonName()
	require.True(t, ok)
	assert.Equal(t, "John Doe", name)

	part, ok := q.ClientNamePart()
	require.True(t, ok)
	assert.Equal(t, "acme", part)
}

func TestListAssignmentsQuery_NotConstructed(t *testing.T) {
	var q queries.ListAssignmentsQuery
	require.ErrorIs(t, q.Validate(), queries.ErrListAssignmentsQueryIsNotConstructed)
}

func TestCountQueries_NotConstructed(t *testing.T) {
	var orders queries.CountOrdersQuery
	require.ErrorIs(t, orders.Validate(), queries.ErrCountOrdersQueryIsNotConstructed)

	var persons queries.CountDeliveryPersonsQuery
	require.ErrorIs(t, persons.Validate(), queries.ErrCountDeliveryPersonsQueryIsNotConstructed)

	var assignments queries.CountAssignmentsQuery
	require.ErrorIs(t, assignments.Validate(), queries.ErrCountAssignmentsQueryIsNotConstructed)
}
