package services

import (
	"fmt"

	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/core/domain/model/order"
)

// TransitionAuthority decides whether an actor may move an order to a
// requested status and applies the transition, including the driver
// binding at the pick-up edge.
//
// The decision runs in three steps:
//  1. Structural: the (current, target) pair must be an edge of the
//     lifecycle state machine (order.ErrInvalidTransition otherwise).
//  2. Authorization: the actor's role must match the edge's required role,
//     and for the accept edge the actor must own the order's restaurant
//     (order.ErrForbidden otherwise).
//  3. Aggregate rules: the claim edge requires an unbound order
//     (order.ErrAlreadyClaimed), the delivery edge the bound driver
//     (order.ErrForbidden).
//
// One refinement to step 1: a driver racing behind a bound order gets the
// claim-state answer, not the structural one. A losing pick-up attempt
// reports ErrAlreadyClaimed even though the order has already left
// Accepted, and a delivery attempt by a driver the order is not bound to
// reports ErrForbidden even after the bound driver delivered.
//
// The authority mutates only the passed aggregate. Making the outcome
// durable, atomically for the claim edge, is the caller's job.
type TransitionAuthority struct{}

// NewTransitionAuthority creates a new TransitionAuthority instance.
func NewTransitionAuthority() TransitionAuthority {
	return TransitionAuthority{}
}

// Apply validates and performs the requested transition on ord.
//
// restaurantOwner is the identity owning the order's restaurant; it is
// consulted only for the Pending -> Accepted edge and may be the zero
// value for every other target.
func (a TransitionAuthority) Apply(
	act actor.Actor,
	ord *order.Order,
	target order.Status,
	restaurantOwner kernel.UUID,
) error {
	if err := act.Validate(); err != nil {
		return err
	}
	if err := ord.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	requiredRole, err := ord.Status().RequiredRole(target)
	if err != nil {
		return a.claimStateError(act, ord, target, err)
	}
	if act.Role() != requiredRole {
		return fmt.Errorf(
			"%w: %s -> %s requires role %s, actor is %s",
			order.ErrForbidden, ord.Status(), target, requiredRole, act.Role(),
		)
	}

	switch target {
	case order.Accepted:
		if !restaurantOwner.IsEqual(act.ID()) {
			return fmt.Errorf(
				"%w: actor %s does not own the order's restaurant",
				order.ErrForbidden, act.ID(),
			)
		}
		return ord.Accept()

	case order.OutForDelivery:
		return ord.Claim(act.ID())

	case order.Delivered:
		return ord.CompleteDelivery(act.ID())

	case order.Unknown, order.Pending:
		// Unreachable: no edge targets these statuses, so RequiredRole
		// already rejected the request.
	}

	return fmt.Errorf("%w: %s -> %s", order.ErrInvalidTransition, ord.Status(), target)
}

// claimStateError refines a structural rejection for drivers arriving
// behind a bound order: the race loser should learn about the claim, not
// about the edge it lost.
func (a TransitionAuthority) claimStateError(
	act actor.Actor,
	ord *order.Order,
	target order.Status,
	structural error,
) error {
	if act.Role() != actor.Driver || ord.Driver() == nil || ord.Driver().IsEqual(act.ID()) {
		return structural
	}

	switch target { //nolint:exhaustive // other targets keep the structural answer
	case order.OutForDelivery:
		return fmt.Errorf("%w: driver %s holds it", order.ErrAlreadyClaimed, ord.Driver())
	case order.Delivered:
		return fmt.Errorf(
			"%w: order is not bound to driver %s", order.ErrForbidden, act.ID(),
		)
	}

	return structural
}
