package commands

import (
	"errors"

	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)

	// ErrRestaurantNotOwned rejects menu management by anyone but the
	// restaurant's owner.
	ErrRestaurantNotOwned = errors.New("restaurant is not owned by the actor")
)

// AddMenuItemCommand adds a dish to a restaurant's menu.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID   kernel.UUID
	owner        actor.Actor
	restaurantID kernel.UUID
	name         string
	description  string
	price        kernel.Price
	photoURL     string

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
// The actor must carry the restaurant_owner role; whether they own this
// particular restaurant is checked by the handler.
func NewAddMenuItemCommand(
	menuItemID kernel.UUID,
	owner actor.Actor,
	restaurantID kernel.UUID,
	name string,
	description string,
	price kernel.Price,
	photoURL string,
) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setOwner(owner),
		cmd.setRestaurantID(restaurantID),
		cmd.setPrice(price),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	cmd.name = name
	cmd.description = description
	cmd.photoURL = photoURL

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier for the new menu item.
func (c AddMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Owner returns the requesting owner.
func (c AddMenuItemCommand) Owner() actor.Actor {
	return c.owner
}

// RestaurantID returns the menu's restaurant.
func (c AddMenuItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the dish name.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Description returns the dish description, possibly empty.
func (c AddMenuItemCommand) Description() string {
	return c.description
}

// Price returns the dish price.
func (c AddMenuItemCommand) Price() kernel.Price {
	return c.price
}

// PhotoURL returns the dish photo location, possibly empty.
func (c AddMenuItemCommand) PhotoURL() string {
	return c.photoURL
}

func (c *AddMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *AddMenuItemCommand) setOwner(owner actor.Actor) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	if owner.Role() != actor.RestaurantOwner {
		return ErrOnlyOwnersManageRestaurants
	}

	c.owner = owner
	return nil
}

func (c *AddMenuItemCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddMenuItemCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
