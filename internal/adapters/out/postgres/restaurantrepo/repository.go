package restaurantrepo

import (
	"context"
	"errors"

	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/core/domain/model/restaurant"
	"mercurydash/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new restaurant to the database.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a restaurant by ID.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return restaurantToDomain(dto)
}

// GetAll retrieves every restaurant sorted by name.
func (r *GormRestaurantRepository) GetAll(ctx context.Context) ([]*restaurant.Restaurant, error) {
	var dtos []RestaurantDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	restaurants := make([]*restaurant.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		rest, err := restaurantToDomain(dto)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}

	return restaurants, nil
}

// GetAllByOwner retrieves the restaurants one owner controls, sorted by name.
func (r *GormRestaurantRepository) GetAllByOwner(
	ctx context.Context,
	ownerID kernel.UUID,
) ([]*restaurant.Restaurant, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RestaurantDTO
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "owner_id = ?", ownerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	restaurants := make([]*restaurant.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		rest, err := restaurantToDomain(dto)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}

	return restaurants, nil
}

// AddMenuItem saves a new menu item to the database.
func (r *GormRestaurantRepository) AddMenuItem(ctx context.Context, item *restaurant.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// UpdateMenuItem saves changes to an existing menu item.
func (r *GormRestaurantRepository) UpdateMenuItem(ctx context.Context, item *restaurant.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(item)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":        dto.Name,
			"description": dto.Description,
			"price_cents": dto.PriceCents,
			"photo_url":   dto.PhotoURL,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", item.ID().String())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// RemoveMenuItem deletes a menu item from the database.
func (r *GormRestaurantRepository) RemoveMenuItem(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", id.String())
	}

	return nil
}

// GetMenuItem retrieves a menu item by ID.
func (r *GormRestaurantRepository) GetMenuItem(ctx context.Context, id kernel.UUID) (*restaurant.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	return menuItemToDomain(dto)
}

// GetMenuByRestaurant retrieves a restaurant's menu sorted by name.
func (r *GormRestaurantRepository) GetMenuByRestaurant(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]*restaurant.MenuItem, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MenuItemDTO
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "restaurant_id = ?", restaurantID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	items := make([]*restaurant.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := menuItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
