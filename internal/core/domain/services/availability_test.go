package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/deliveryperson"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityPolicy_Apply(t *testing.T) {
	policy := services.NewAvailabilityPolicy()

	t.Run("active work marks the courier busy", func(t *testing.T) {
		p := newAvailablePerson(t)

		require.NoError(t, policy.Apply(p, 1))
		assert.False(t, p.IsAvailable())
	})

	t.Run("no active work restores availability", func(t *testing.T) {
		p := newAvailablePerson(t)
		p.MarkBusy()

		require.NoError(t, policy.Apply(p, 0))
		assert.True(t, p.IsAvailable())
	})

	t.Run("unconstructed aggregate is rejected", func(t *testing.T) {
		require.Error(t, policy.Apply(&deliveryperson.DeliveryPerson{}, 0))
	})
}
