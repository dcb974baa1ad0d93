package commands

import (
	"errors"

	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
	ErrOnlyOwnersManageRestaurants = errors.New("only restaurant owners manage restaurants")
)

// CreateRestaurantCommand registers a restaurant under the requesting owner.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	owner        actor.Actor
	name         string
	cuisine      string
	logoURL      string

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant.
// The actor must carry the restaurant_owner role.
func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	owner actor.Actor,
	name string,
	cuisine string,
	logoURL string,
) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setOwner(owner),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	// Name shape is validated by the restaurant aggregate.
	cmd.name = name
	cmd.cuisine = cuisine
	cmd.logoURL = logoURL

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier for the new restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Owner returns the registering owner.
func (c CreateRestaurantCommand) Owner() actor.Actor {
	return c.owner
}

// Name returns the restaurant's display name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Cuisine returns the restaurant's cuisine label.
func (c CreateRestaurantCommand) Cuisine() string {
	return c.cuisine
}

// LogoURL returns the restaurant's logo location, possibly empty.
func (c CreateRestaurantCommand) LogoURL() string {
	return c.logoURL
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setOwner(owner actor.Actor) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	if owner.Role() != actor.RestaurantOwner {
		return ErrOnlyOwnersManageRestaurants
	}

	c.owner = owner
	return nil
}
