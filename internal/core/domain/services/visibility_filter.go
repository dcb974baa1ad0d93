package services

import (
	"github.com/google/uuid"

	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/core/domain/model/order"
)

// VisibilityFilter computes the subset of an order snapshot one actor is
// authorized to observe.
//
// Rules by role:
//   - customer: own orders, all statuses
//   - restaurant_owner: orders of owned restaurants, all statuses
//   - driver: unclaimed Accepted orders, plus the driver's own
//     OutForDelivery orders; Delivered orders are never shown
//
// The filter is deterministic and preserves the snapshot's order. It never
// mutates its inputs.
type VisibilityFilter struct{}

// NewVisibilityFilter creates a new VisibilityFilter instance.
func NewVisibilityFilter() VisibilityFilter {
	return VisibilityFilter{}
}

// Visible returns the orders act may observe, in snapshot order.
//
// ownedRestaurants lists the restaurants the actor owns; it is consulted
// only for the restaurant_owner role and may be empty for the others.
func (f VisibilityFilter) Visible(
	act actor.Actor,
	ownedRestaurants []kernel.UUID,
	orders []*order.Order,
) ([]*order.Order, error) {
	if err := act.Validate(); err != nil {
		return nil, err
	}

	owned := make(map[uuid.UUID]struct{}, len(ownedRestaurants))
	for _, id := range ownedRestaurants {
		owned[id.Bytes()] = struct{}{}
	}

	visible := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if isVisible(act, owned, o) {
			visible = append(visible, o)
		}
	}

	return visible, nil
}

// isVisible applies the per-role rule for a single order. The switch is
// exhaustive over the closed role set; Unknown never reaches here because
// Visible validates the actor first.
func isVisible(act actor.Actor, owned map[uuid.UUID]struct{}, o *order.Order) bool {
	switch act.Role() {
	case actor.Customer:
		return o.Customer().IsEqual(act.ID())

	case actor.RestaurantOwner:
		_, ok := owned[o.Restaurant().Bytes()]
		return ok

	case actor.Driver:
		if o.Status() == order.Accepted && o.Driver() == nil {
			return true
		}
		return o.Status() == order.OutForDelivery &&
			o.Driver() != nil && o.Driver().IsEqual(act.ID())

	case actor.Unknown:
		return false
	}

	return false
}
