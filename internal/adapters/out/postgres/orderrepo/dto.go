// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored in its wire form so the lifecycle reads naturally in SQL.
// The driver column is null until a driver claims the order.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID    uuid.UUID  `gorm:"type:uuid;index"`
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddress string
	TotalPriceCents int64
	Status          string `gorm:"type:varchar(32);index"`
	CreatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.Customer().Bytes(),
		RestaurantID:    aggregate.Restaurant().Bytes(),
		DriverID:        driverID,
		DeliveryAddress: aggregate.DeliveryAddress(),
		TotalPriceCents: aggregate.TotalPrice().Cents(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	price, err := kernel.NewPriceFromCents(dto.TotalPriceCents)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, restaurantID, driverID,
		dto.DeliveryAddress, price, status, dto.CreatedAt,
	)
}
