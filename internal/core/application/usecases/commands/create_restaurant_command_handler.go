package commands

import (
	"context"

	"mercurydash/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler persists new restaurants.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant registration.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant registration command and returns the new restaurant.
func (h CreateRestaurantCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRestaurantCommand,
) (*restaurant.Restaurant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r, err := restaurant.NewRestaurant(
		cmd.RestaurantID(), cmd.Owner().ID(), cmd.Name(), cmd.Cuisine(), cmd.LogoURL(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RestaurantRepository().Add(ctx, r); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
