package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/deliveryperson"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentPlanner_Plan_Success(t *testing.T) {
	planner := services.NewAssignmentPlanner()
	o := newUnassignedOrder(t)
	p := newAvailablePerson(t)

	a, err := planner.Plan(o, p)
	require.NoError(t, err)

	assert.Equal(t, assignment.Pending, a.Status())
	assert.True(t, a.OrderID().IsEqual(o.ID()))
	assert.True(t, a.DeliveryPersonID().IsEqual(p.ID()))
	assert.Equal(t, order.Assigned, o.Status())
	assert.False(t, p.IsAvailable())
}

func TestAssignmentPlanner_Plan_OrderAlreadyAssigned(t *testing.T) {
	planner := services.NewAssignmentPlanner()
	o := newUnassignedOrder(t)
	first := newAvailablePerson(t)
	second := newAvailablePerson(t)

	_, err := planner.Plan(o, first)
	require.NoError(t, err)

	_, err = planner.Plan(o, second)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.True(t, second.IsAvailable(), "loser must leave the courier untouched")
}

func TestAssignmentPlanner_Plan_PersonUnavailable(t *testing.T) {
	planner := services.NewAssignmentPlanner()
	o := newUnassignedOrder(t)
	p := newAvailablePerson(t)
	p.MarkBusy()

	_, err := planner.Plan(o, p)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, order.UnAssigned, o.Status())
}

func TestAssignmentPlanner_Plan_TerminalOrder(t *testing.T) {
	planner := services.NewAssignmentPlanner()
	o := newUnassignedOrder(t)
	require.NoError(t, o.Cancel())

	_, err := planner.Plan(o, newAvailablePerson(t))
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestAssignmentPlanner_Plan_UnconstructedAggregates(t *testing.T) {
	planner := services.NewAssignmentPlanner()

	_, err := planner.Plan(&order.Order{}, newAvailablePerson(t))
	require.Error(t, err)

	_, err = planner.Plan(newUnassignedOrder(t), &deliveryperson.DeliveryPerson{})
	require.Error(t, err)
}

func newUnassignedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), "Acme Corp", "12 Main St",
		time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func newAvailablePerson(t *testing.T) *deliveryperson.DeliveryPerson {
	t.Helper()
	p, err := deliveryperson.NewDeliveryPerson(kernel.NewUUID(), "Alice", "+3550001122")
	require.NoError(t, err)
	return p
}
