package restaurant_test

import (
	"testing"

	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/core/domain/model/restaurant"
	"mercurydash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItemPrice(t *testing.T, cents int64) kernel.Price {
	t.Helper()
	p, err := kernel.NewPriceFromCents(cents)
	require.NoError(t, err)
	return p
}

func TestNewMenuItem(t *testing.T) {
	id := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	t.Run("creates valid menu item", func(t *testing.T) {
		m, err := restaurant.NewMenuItem(
			id, restaurantID, "Margherita", "Tomato and mozzarella",
			menuItemPrice(t, 1150), "blob://photo",
		)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.ID().IsEqual(id))
		assert.True(t, m.Restaurant().IsEqual(restaurantID))
		assert.Equal(t, "Margherita", m.Name())
		assert.Equal(t, "Tomato and mozzarella", m.Description())
		assert.Equal(t, int64(1150), m.Price().Cents())
		assert.Equal(t, "blob://photo", m.PhotoURL())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := restaurant.NewMenuItem(id, restaurantID, "", "", menuItemPrice(t, 1150), "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with unconstructed price", func(t *testing.T) {
		var price kernel.Price

		_, err := restaurant.NewMenuItem(id, restaurantID, "Margherita", "", price, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Price must be created")
	})
}

func TestMenuItem_UpdateDetails(t *testing.T) {
	newItem := func(t *testing.T) *restaurant.MenuItem {
		t.Helper()
		m, err := restaurant.NewMenuItem(
			kernel.NewUUID(), kernel.NewUUID(), "Margherita", "Classic",
			menuItemPrice(t, 1150), "",
		)
		require.NoError(t, err)
		return m
	}

	t.Run("replaces editable fields", func(t *testing.T) {
		m := newItem(t)

		err := m.UpdateDetails("Diavola", "Spicy salami", menuItemPrice(t, 1350), "blob://new")

		require.NoError(t, err)
		assert.Equal(t, "Diavola", m.Name())
		assert.Equal(t, "Spicy salami", m.Description())
		assert.Equal(t, int64(1350), m.Price().Cents())
		assert.Equal(t, "blob://new", m.PhotoURL())
	})

	t.Run("keeps state on invalid update", func(t *testing.T) {
		m := newItem(t)
		var price kernel.Price

		err := m.UpdateDetails("", "x", price, "")

		require.Error(t, err)
		assert.Equal(t, "Margherita", m.Name())
		assert.Equal(t, int64(1150), m.Price().Cents())
	})

	t.Run("restaurant binding is immutable", func(t *testing.T) {
		m := newItem(t)
		before := m.Restaurant()

		require.NoError(t, m.UpdateDetails("Diavola", "", menuItemPrice(t, 1350), ""))
		assert.True(t, m.Restaurant().IsEqual(before))
	})
}

func TestMenuItem_Validate(t *testing.T) {
	t.Run("nil menu item is rejected", func(t *testing.T) {
		var m *restaurant.MenuItem

		assert.Equal(t, restaurant.ErrMenuItemIsNotConstructed, m.Validate())
	})
}
