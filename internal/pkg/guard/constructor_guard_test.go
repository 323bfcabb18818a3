package guard_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	g := guard.NewConstructorGuard()

	require.NoError(t, g.Validate(errors.New("not constructed")))
	require.NoError(t, g.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		customError := errors.New("object not constructed")

		err := g.Validate(customError)

		require.Error(t, err)
		assert.ErrorIs(t, err, customError)
	})

	t.Run("zero_value_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}
