package commands

import (
	"context"

	"mercurydash/internal/core/domain/model/restaurant"
)

// AddMenuItemCommandHandler adds dishes to a restaurant's menu after
// verifying the requesting owner controls the restaurant.
type AddMenuItemCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for menu additions.
func NewAddMenuItemCommandHandler(uowFactory RestaurantUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu addition command and returns the new item.
// Returns ErrRestaurantNotOwned when the actor does not own the restaurant.
func (h AddMenuItemCommandHandler) Handle(
	ctx context.Context,
	cmd AddMenuItemCommand,
) (*restaurant.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RestaurantRepository()

	r, err := repo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}
	if !r.IsOwnedBy(cmd.Owner().ID()) {
		return nil, ErrRestaurantNotOwned
	}

	item, err := restaurant.NewMenuItem(
		cmd.MenuItemID(), cmd.RestaurantID(),
		cmd.Name(), cmd.Description(), cmd.Price(), cmd.PhotoURL(),
	)
	if err != nil {
		return nil, err
	}

	if err := repo.AddMenuItem(ctx, item); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
