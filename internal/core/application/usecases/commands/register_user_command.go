package commands

import (
	"errors"

	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand records a user account provisioned by the identity
// provider. The record store keeps no credentials; the provider owns those.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	email  string
	name   string
	role   actor.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a provisioned user.
func NewRegisterUserCommand(
	userID kernel.UUID,
	email string,
	name string,
	role actor.Role,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	// Email and name shape is validated by the user aggregate.
	cmd.email = email
	cmd.name = name

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the provisioned account's identifier.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the account's email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Name returns the account's display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Role returns the account's marketplace role.
func (c RegisterUserCommand) Role() actor.Role {
	return c.role
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setRole(role actor.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
