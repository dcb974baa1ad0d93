package actor

import (
	"errors"

	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not
// created through the NewActor constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is a verified identity plus its role, as resolved by the identity
// provider boundary. Every visibility and transition decision takes an
// Actor as its subject; the core never authenticates directly.
//
// Actor is an immutable value object.
type Actor struct {
	id   kernel.UUID
	role Role

	guard guard.ConstructorGuard
}

// NewActor creates an Actor from a validated identity and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Actor was created via NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's marketplace role.
func (a Actor) Role() Role {
	return a.role
}

// IsEqual compares two actors by identity and role.
func (a Actor) IsEqual(other Actor) bool {
	return a.id.IsEqual(other.id) && a.role == other.role
}
