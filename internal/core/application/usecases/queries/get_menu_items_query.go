package queries

import (
	"errors"

	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/pkg/guard"
)

var ErrGetMenuItemsQueryIsNotConstructed = errors.New(
	"GetMenuItemsQuery must be created via NewGetMenuItemsQuery constructor",
)

// GetMenuItemsQuery retrieves one restaurant's menu.
type GetMenuItemsQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuItemsQuery creates a query for a restaurant's menu.
func NewGetMenuItemsQuery(restaurantID kernel.UUID) (GetMenuItemsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetMenuItemsQuery{}, err
	}

	return GetMenuItemsQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemsQueryIsNotConstructed)
}

// RestaurantID returns the menu's restaurant.
func (q GetMenuItemsQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetMenuItemsQueryResponse is one dish as the menu shows it.
type GetMenuItemsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	PriceCents  int64
	PhotoURL    string
}
