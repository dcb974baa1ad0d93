package commands

import (
	"context"
	"time"

	"mercurydash/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Resolves the ordered menu item, snapshots its price, and creates the
// order in Pending status under the item's restaurant.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      func() time.Time
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the order placement command and returns the new order.
// The order's total price is the menu item's price at this moment; later
// menu edits do not touch placed orders.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
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

	item, err := uow.RestaurantRepository().GetMenuItem(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	ord, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Customer().ID(),
		item.Restaurant(),
		cmd.DeliveryAddress(),
		item.Price(),
		h.clock(),
	)
	if err != nil {
		return nil, err
	}

	if err := uow.OrderRepository().Add(ctx, ord); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}
