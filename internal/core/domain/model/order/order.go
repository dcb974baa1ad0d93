package order

import (
	"errors"
	"fmt"
	"time"

	"mercurydash/internal/core/domain/model/kernel"
	"mercurydash/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for a food order. It references its customer
// and restaurant by identity and, once claimed, its driver.
//
// Order maintains these invariants:
//   - customerID and restaurantID are immutable after creation
//   - driverID is nil until the pick-up transition and never changes once set
//   - totalPrice is fixed at creation and never mutated by a transition
//   - status only changes along the edges Status defines
//
// Orders are mutated exclusively through the transition methods below and
// are never deleted.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID

	// driverID is the bound driver (nil until the order is claimed)
	driverID *kernel.UUID

	deliveryAddress string
	totalPrice      kernel.Price
	status          Status
	createdAt       time.Time

	isConstructed bool
}

// NewOrder creates a Pending order placed by a customer at a restaurant.
// The total price snapshots the ordered item's price and stays fixed from
// here on.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	totalPrice kernel.Price,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Beyond field
// validation it checks the status/driver consistency rule: only orders at
// or past the pick-up transition may carry a driver.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	driverID *kernel.UUID,
	deliveryAddress string,
	totalPrice kernel.Price,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setTotalPrice(totalPrice),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}
	if err := status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return nil, err
	}
	o.driverID = driverID

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the identity of the customer who placed the order.
func (o *Order) Customer() kernel.UUID {
	return o.customerID
}

// Restaurant returns the identity of the restaurant the order was placed at.
func (o *Order) Restaurant() kernel.UUID {
	return o.restaurantID
}

// Driver returns the bound driver's identity, or nil while unclaimed.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// TotalPrice returns the price fixed at creation.
func (o *Order) TotalPrice() kernel.Price {
	return o.totalPrice
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Accept moves the order from Pending to Accepted. The restaurant-owner
// authorization check happens in the transition authority; the aggregate
// enforces only the structural rule.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Claim moves the order from Accepted to OutForDelivery and binds the
// claiming driver in the same step. A second claim fails with
// ErrAlreadyClaimed regardless of which driver attempts it.
func (o *Order) Claim(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.driverID != nil {
		return fmt.Errorf("%w: driver %s holds it", ErrAlreadyClaimed, o.driverID)
	}

	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	return nil
}

// CompleteDelivery moves the order from OutForDelivery to Delivered.
// Only the bound driver may complete the delivery.
func (o *Order) CompleteDelivery(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.driverID == nil || !o.driverID.IsEqual(driverID) {
		return fmt.Errorf("%w: order is not bound to driver %s", ErrForbidden, driverID)
	}

	newStatus, err := o.status.CompleteDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setTotalPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.totalPrice = price
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
