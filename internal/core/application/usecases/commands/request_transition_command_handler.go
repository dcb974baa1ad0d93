package commands

import (
	"context"
	"errors"
	"fmt"

	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/core/domain/model/order"
	"mercurydash/internal/core/domain/services"
	"mercurydash/internal/pkg/errs"
)

// RequestTransitionCommandHandler orchestrates order status transitions.
// Loads the order, consults the TransitionAuthority, and persists the new
// state with an update guarded by the status the order was read in. That
// guard is what turns N racing pick-up requests into exactly one winner:
// the database rejects every write whose guard no longer holds, and the
// losers surface order.ErrAlreadyClaimed without any retry.
//
// Example:
//
//	handler := NewRequestTransitionCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // no such edge in the lifecycle
//	case errors.Is(err, order.ErrForbidden):
//	    // wrong role, wrong restaurant, or wrong driver
//	case errors.Is(err, order.ErrAlreadyClaimed):
//	    // lost the pick-up race
//	case err != nil:
//	    // infrastructure failure
//	default:
//	    fmt.Printf("order is now %s", updated.Status())
//	}
type RequestTransitionCommandHandler struct {
	uowFactory OrderUoWFactory
	authority  services.TransitionAuthority
}

// NewRequestTransitionCommandHandler creates a handler for transition requests.
// Requires an OrderUoWFactory for transactional persistence.
func NewRequestTransitionCommandHandler(uowFactory OrderUoWFactory) RequestTransitionCommandHandler {
	return RequestTransitionCommandHandler{
		uowFactory: uowFactory,
		authority:  services.NewTransitionAuthority(),
	}
}

// Handle processes the transition request and returns the updated order.
// Resolves the restaurant's owner when the target is Accepted so the
// authority can check ownership. Exactly one order record changes per
// successful call.
func (h RequestTransitionCommandHandler) Handle(
	ctx context.Context,
	cmd RequestTransitionCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	prior := ord.Status()

	var restaurantOwner kernel.UUID
	if cmd.Target() == order.Accepted {
		r, err := uow.RestaurantRepository().Get(ctx, ord.Restaurant())
		if err != nil {
			return nil, err
		}
		restaurantOwner = r.Owner()
	}

	if err := h.authority.Apply(cmd.Actor(), ord, cmd.Target(), restaurantOwner); err != nil {
		return nil, err
	}

	if err := orderRepo.UpdateFromStatus(ctx, ord, prior); err != nil {
		if cmd.Target() == order.OutForDelivery && errors.Is(err, errs.ErrConcurrencyConflict) {
			return nil, fmt.Errorf("%w: order %s", order.ErrAlreadyClaimed, ord.ID())
		}
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}
