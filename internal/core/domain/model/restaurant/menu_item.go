package restaurant

import (
	"errors"

	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through NewMenuItem or RestoreMenuItem.
var ErrMenuItemIsNotConstructed = errors.New(
	"MenuItem must be created via NewMenuItem or RestoreMenuItem constructor",
)

// MenuItem is a dish offered by one restaurant. Orders snapshot its price
// at placement, so later edits never affect already-placed orders.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	price        kernel.Price

	// photoURL points at the blob store; empty when no photo was uploaded
	photoURL string

	isConstructed bool
}

// NewMenuItem creates a menu item for the given restaurant.
func NewMenuItem(
	id, restaurantID kernel.UUID,
	name, description string,
	price kernel.Price,
	photoURL string,
) (*MenuItem, error) {
	m := &MenuItem{
		description:   description,
		photoURL:      photoURL,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setRestaurantID(restaurantID),
		m.setName(name),
		m.setPrice(price),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMenuItem reconstructs a menu item from persistence.
func RestoreMenuItem(
	id, restaurantID kernel.UUID,
	name, description string,
	price kernel.Price,
	photoURL string,
) (*MenuItem, error) {
	return NewMenuItem(id, restaurantID, name, description, price, photoURL)
}

// Validate ensures the MenuItem was created through a constructor.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Restaurant returns the owning restaurant's identity.
func (m *MenuItem) Restaurant() kernel.UUID {
	return m.restaurantID
}

// Name returns the dish name.
func (m *MenuItem) Name() string {
	return m.name
}

// Description returns the dish description.
func (m *MenuItem) Description() string {
	return m.description
}

// Price returns the current price.
func (m *MenuItem) Price() kernel.Price {
	return m.price
}

// PhotoURL returns the blob-store reference of the photo, or "".
func (m *MenuItem) PhotoURL() string {
	return m.photoURL
}

// UpdateDetails replaces the editable fields in one validated step.
// The restaurant binding is immutable.
func (m *MenuItem) UpdateDetails(name, description string, price kernel.Price, photoURL string) error {
	if err := errors.Join(
		m.setName(name),
		m.setPrice(price),
	); err != nil {
		return err
	}

	m.description = description
	m.photoURL = photoURL
	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.restaurantID = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}
