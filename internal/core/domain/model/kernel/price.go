package kernel

import (
	"fmt"

	"mercurydash/internal/pkg/errs"
)

// ErrPriceIsNotConstructed indicates a zero-value Price that was never
// created through NewPriceFromCents.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"Price must be created via NewPriceFromCents",
)

// Price is a non-negative monetary amount stored in cents. Menu items carry
// a Price, and an order's total price snapshots the menu item's Price at
// placement and never changes afterwards.
//
// Price is immutable; arithmetic is not needed because single-item orders
// copy the amount as-is.
type Price struct {
	cents int64

	isConstructed bool
}

// NewPriceFromCents creates a Price from an amount in cents.
// Negative amounts are rejected.
func NewPriceFromCents(cents int64) (Price, error) {
	if cents < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%d cents is negative", cents),
		)
	}

	return Price{cents: cents, isConstructed: true}, nil
}

// Cents returns the amount in cents.
func (p Price) Cents() int64 {
	return p.cents
}

// String renders the amount as a decimal figure, e.g. "12.50".
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", p.cents/100, p.cents%100)
}

// IsEqual reports whether two prices represent the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.cents == other.cents
}

// Validate returns ErrPriceIsNotConstructed for the zero value.
func (p Price) Validate() error {
	if !p.isConstructed {
		return ErrPriceIsNotConstructed
	}
	return nil
}
