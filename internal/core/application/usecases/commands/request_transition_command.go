package commands

import (
	"errors"

	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/core/domain/model/order"
	"mercurydash/internal/pkg/guard"
)

var ErrRequestTransitionCommandIsNotConstructed = errors.New(
	"RequestTransitionCommand must be created via NewRequestTransitionCommand constructor",
)

// RequestTransitionCommand represents an actor's request to move one order
// to a new lifecycle status. Every status change in the system, accepting,
// picking up, delivering, goes through this command.
//
// Example:
//
//	cmd, err := NewRequestTransitionCommand(driver, orderID, order.OutForDelivery)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewRequestTransitionCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrAlreadyClaimed) {
//	    // another driver got there first
//	}
type RequestTransitionCommand struct { //nolint:recvcheck //using for validation
	act     actor.Actor
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewRequestTransitionCommand creates a command to request a status change.
// Validates that the actor, order ID, and target status are well formed.
// Whether the actor may perform the transition is decided by the handler.
func NewRequestTransitionCommand(
	act actor.Actor,
	orderID kernel.UUID,
	target order.Status,
) (RequestTransitionCommand, error) {
	cmd := RequestTransitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(act),
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return RequestTransitionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestTransitionCommandIsNotConstructed if validation fails.
func (c RequestTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestTransitionCommandIsNotConstructed)
}

// Actor returns the authenticated subject requesting the transition.
func (c RequestTransitionCommand) Actor() actor.Actor {
	return c.act
}

// OrderID returns the identifier of the order to transition.
func (c RequestTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested destination status.
func (c RequestTransitionCommand) Target() order.Status {
	return c.target
}

func (c *RequestTransitionCommand) setActor(act actor.Actor) error {
	if err := act.Validate(); err != nil {
		return err
	}

	c.act = act
	return nil
}

func (c *RequestTransitionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestTransitionCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
