package commands

import (
	"context"
)

// RemoveMenuItemCommandHandler removes menu items after verifying ownership.
// Existing orders are untouched; they carry their own price snapshot.
type RemoveMenuItemCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewRemoveMenuItemCommandHandler creates a handler for menu removals.
func NewRemoveMenuItemCommandHandler(uowFactory RestaurantUoWFactory) RemoveMenuItemCommandHandler {
	return RemoveMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu removal command.
func (h RemoveMenuItemCommandHandler) Handle(ctx context.Context, cmd RemoveMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RestaurantRepository()

	item, err := repo.GetMenuItem(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	r, err := repo.Get(ctx, item.Restaurant())
	if err != nil {
		return err
	}
	if !r.IsOwnedBy(cmd.Owner().ID()) {
		return ErrRestaurantNotOwned
	}

	if err := repo.RemoveMenuItem(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
