package commands

import (
	"errors"

	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/pkg/guard"
)

var ErrRemoveMenuItemCommandIsNotConstructed = errors.New(
	"RemoveMenuItemCommand must be created via NewRemoveMenuItemCommand constructor",
)

// RemoveMenuItemCommand removes a dish from a restaurant's menu.
type RemoveMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	owner      actor.Actor

	guard guard.ConstructorGuard
}

// NewRemoveMenuItemCommand creates a command to remove a menu item.
func NewRemoveMenuItemCommand(menuItemID kernel.UUID, owner actor.Actor) (RemoveMenuItemCommand, error) {
	cmd := RemoveMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setOwner(owner),
	); err != nil {
		return RemoveMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier of the menu item to remove.
func (c RemoveMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Owner returns the requesting owner.
func (c RemoveMenuItemCommand) Owner() actor.Actor {
	return c.owner
}

func (c *RemoveMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *RemoveMenuItemCommand) setOwner(owner actor.Actor) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	if owner.Role() != actor.RestaurantOwner {
		return ErrOnlyOwnersManageRestaurants
	}

	c.owner = owner
	return nil
}
