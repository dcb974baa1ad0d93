package commands

import (
	"context"

	"mercurydash/internal/core/domain/model/restaurant"
)

// UpdateMenuItemCommandHandler edits menu items after verifying ownership
// of the restaurant the item belongs to.
type UpdateMenuItemCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for menu edits.
func NewUpdateMenuItemCommandHandler(uowFactory RestaurantUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu edit command and returns the updated item.
func (h UpdateMenuItemCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateMenuItemCommand,
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

	item, err := repo.GetMenuItem(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	r, err := repo.Get(ctx, item.Restaurant())
	if err != nil {
		return nil, err
	}
	if !r.IsOwnedBy(cmd.Owner().ID()) {
		return nil, ErrRestaurantNotOwned
	}

	if err := item.UpdateDetails(cmd.Name(), cmd.Description(), cmd.Price(), cmd.PhotoURL()); err != nil {
		return nil, err
	}

	if err := repo.UpdateMenuItem(ctx, item); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
