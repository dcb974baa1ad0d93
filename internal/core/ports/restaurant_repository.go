// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurants
// and their menu items.
type RestaurantRepository interface {
	// Add persists a new restaurant.
	Add(ctx context.Context, r *restaurant.Restaurant) error

	// Get retrieves a restaurant by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetAll retrieves every restaurant, sorted by name for stable listings.
	GetAll(ctx context.Context) ([]*restaurant.Restaurant, error)

	// GetAllByOwner retrieves the restaurants one owner controls.
	// Ownership resolution for order visibility goes through this method.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*restaurant.Restaurant, error)

	// AddMenuItem persists a new menu item under its restaurant.
	AddMenuItem(ctx context.Context, item *restaurant.MenuItem) error

	// UpdateMenuItem persists changes to an existing menu item.
	UpdateMenuItem(ctx context.Context, item *restaurant.MenuItem) error

	// RemoveMenuItem deletes a menu item. Orders already placed keep the
	// price they captured at placement time.
	RemoveMenuItem(ctx context.Context, id kernel.UUID) error

	// GetMenuItem retrieves a menu item by its unique identifier.
	GetMenuItem(ctx context.Context, id kernel.UUID) (*restaurant.MenuItem, error)

	// GetMenuByRestaurant retrieves a restaurant's menu, sorted by name.
	GetMenuByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*restaurant.MenuItem, error)
}
