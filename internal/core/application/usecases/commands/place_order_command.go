package commands

import (
	"errors"

	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrOnlyCustomersPlaceOrders  = errors.New("only customers place orders")
)

// PlaceOrderCommand represents a customer's request to order one menu item
// from a restaurant, delivered to an address. Orders carry a single menu
// item; the total price is snapshotted from the item at placement time.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customer        actor.Actor
	menuItemID      kernel.UUID
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// The actor must carry the customer role; drivers and owners order through
// customer accounts like anyone else.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customer actor.Actor,
	menuItemID kernel.UUID,
	deliveryAddress string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setMenuItemID(menuItemID),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the ordering customer.
func (c PlaceOrderCommand) Customer() actor.Actor {
	return c.customer
}

// MenuItemID returns the identifier of the menu item being ordered.
func (c PlaceOrderCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// DeliveryAddress returns where the order is delivered.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomer(customer actor.Actor) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	if customer.Role() != actor.Customer {
		return ErrOnlyCustomersPlaceOrders
	}

	c.customer = customer
	return nil
}

func (c *PlaceOrderCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}
