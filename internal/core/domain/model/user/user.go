// Package user provides the record-store copy of an identity-provider
// account. Credentials never live here; the identity provider owns
// authentication, and this record only carries the profile fields other
// aggregates reference by id. The role is immutable after creation.
package user

import (
	"errors"
	"fmt"
	"strings"

	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is a marketplace participant: a customer, driver, or restaurant
// owner, as provisioned by the identity provider.
type User struct {
	id    kernel.UUID
	email string
	name  string
	role  actor.Role

	isConstructed bool
}

// NewUser creates a user record with a validated role and email.
func NewUser(id kernel.UUID, email, name string, role actor.Role) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user record from persistence.
func RestoreUser(id kernel.UUID, email, name string, role actor.Role) (*User, error) {
	return NewUser(id, email, name, role)
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Role returns the user's marketplace role.
func (u *User) Role() actor.Role {
	return u.role
}

// AsActor converts the user record into the authorization subject.
func (u *User) AsActor() (actor.Actor, error) {
	return actor.NewActor(u.id, u.role)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q is not an email address", email),
		)
	}
	u.email = email
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setRole(role actor.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
