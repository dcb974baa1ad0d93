package commands

import (
	"errors"

	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand edits a dish on a restaurant's menu. Orders placed
// before the edit keep the price they captured.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID  kernel.UUID
	owner       actor.Actor
	name        string
	description string
	price       kernel.Price
	photoURL    string

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to edit a menu item.
func NewUpdateMenuItemCommand(
	menuItemID kernel.UUID,
	owner actor.Actor,
	name string,
	description string,
	price kernel.Price,
	photoURL string,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setOwner(owner),
		cmd.setPrice(price),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	cmd.name = name
	cmd.description = description
	cmd.photoURL = photoURL

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier of the menu item to edit.
func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Owner returns the requesting owner.
func (c UpdateMenuItemCommand) Owner() actor.Actor {
	return c.owner
}

// Name returns the new dish name.
func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

// Description returns the new dish description.
func (c UpdateMenuItemCommand) Description() string {
	return c.description
}

// Price returns the new dish price.
func (c UpdateMenuItemCommand) Price() kernel.Price {
	return c.price
}

// PhotoURL returns the new dish photo location.
func (c UpdateMenuItemCommand) PhotoURL() string {
	return c.photoURL
}

func (c *UpdateMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *UpdateMenuItemCommand) setOwner(owner actor.Actor) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	if owner.Role() != actor.RestaurantOwner {
		return ErrOnlyOwnersManageRestaurants
	}

	c.owner = owner
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
