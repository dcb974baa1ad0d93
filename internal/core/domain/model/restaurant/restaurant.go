package restaurant

import (
	"errors"

	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
// not created through NewRestaurant or RestoreRestaurant.
var ErrRestaurantIsNotConstructed = errors.New(
	"Restaurant must be created via NewRestaurant or RestoreRestaurant constructor",
)

// Restaurant is an aggregate root owned by a single restaurant owner.
// The owner binding is immutable; it is the basis for the owner's order
// visibility and for the accept-transition authorization.
type Restaurant struct {
	id      kernel.UUID
	ownerID kernel.UUID
	name    string
	cuisine string

	// logoURL points at the blob store; empty when no logo was uploaded
	logoURL string

	isConstructed bool
}

// NewRestaurant creates a restaurant for the given owner.
// The logo URL may be empty.
func NewRestaurant(id, ownerID kernel.UUID, name, cuisine, logoURL string) (*Restaurant, error) {
	r := &Restaurant{
		cuisine:       cuisine,
		logoURL:       logoURL,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOwnerID(ownerID),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant reconstructs a restaurant from persistence.
func RestoreRestaurant(id, ownerID kernel.UUID, name, cuisine, logoURL string) (*Restaurant, error) {
	return NewRestaurant(id, ownerID, name, cuisine, logoURL)
}

// Validate ensures the Restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Owner returns the owning user's identity.
func (r *Restaurant) Owner() kernel.UUID {
	return r.ownerID
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Cuisine returns the cuisine label shown in the directory.
func (r *Restaurant) Cuisine() string {
	return r.cuisine
}

// LogoURL returns the blob-store reference of the logo, or "".
func (r *Restaurant) LogoURL() string {
	return r.logoURL
}

// IsOwnedBy reports whether the given identity owns this restaurant.
func (r *Restaurant) IsOwnedBy(userID kernel.UUID) bool {
	return r.ownerID.IsEqual(userID)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.ownerID = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}
