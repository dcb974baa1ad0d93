// Package restaurantrepo persists restaurants and their menu items.
package restaurantrepo

import (
	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for restaurants.
type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;index"`
	Name    string
	Cuisine string
	LogoURL string
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO represents the database structure for menu items.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Description  string
	PriceCents   int64
	PhotoURL     string
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func restaurantFromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:      r.ID().Bytes(),
		OwnerID: r.Owner().Bytes(),
		Name:    r.Name(),
		Cuisine: r.Cuisine(),
		LogoURL: r.LogoURL(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, ownerID, dto.Name, dto.Cuisine, dto.LogoURL)
}

func menuItemFromDomain(item *restaurant.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           item.ID().Bytes(),
		RestaurantID: item.Restaurant().Bytes(),
		Name:         item.Name(),
		Description:  item.Description(),
		PriceCents:   item.Price().Cents(),
		PhotoURL:     item.PhotoURL(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*restaurant.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPriceFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreMenuItem(
		id, restaurantID, dto.Name, dto.Description, price, dto.PhotoURL,
	)
}
