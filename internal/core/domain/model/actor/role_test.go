package actor_test

import (
	"testing"

	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	t.Run("accepts marketplace roles", func(t *testing.T) {
		require.NoError(t, actor.Customer.Validate())
		require.NoError(t, actor.Driver.Validate())
		require.NoError(t, actor.RestaurantOwner.Validate())
	})

	t.Run("rejects unknown", func(t *testing.T) {
		err := actor.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		err := actor.Role(42).Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "42 is not a valid role")
	})
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "customer", actor.Customer.String())
	assert.Equal(t, "driver", actor.Driver.String())
	assert.Equal(t, "restaurant_owner", actor.RestaurantOwner.String())
	assert.Equal(t, "unknown", actor.Unknown.String())
	assert.Equal(t, "unknown", actor.Role(42).String())
}

func TestRoleFromString(t *testing.T) {
	t.Run("parses wire strings", func(t *testing.T) {
		for _, tc := range []struct {
			wire string
			want actor.Role
		}{
			{"customer", actor.Customer},
			{"driver", actor.Driver},
			{"restaurant_owner", actor.RestaurantOwner},
		} {
			role, err := actor.RoleFromString(tc.wire)

			require.NoError(t, err)
			assert.Equal(t, tc.want, role)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := actor.RoleFromString("admin")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("round-trips every valid role", func(t *testing.T) {
		for _, role := range []actor.Role{actor.Customer, actor.Driver, actor.RestaurantOwner} {
			parsed, err := actor.RoleFromString(role.String())

			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})
}
