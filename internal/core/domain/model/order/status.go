package order

import (
	"fmt"

	"mercurydash/internal/core/domain/model/actor"
	"mercurydash/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with a single forward path:
//
//	Pending ──> Accepted ──> OutForDelivery ──> Delivered
//
// Each edge is bound to exactly one authorized role; RequiredRole exposes
// the binding so the transition authority can enforce it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status after a customer places an order.
	// The restaurant owner has not acted on it yet.
	Pending

	// Accepted indicates the restaurant owner accepted the order.
	// Orders in this status are visible to every driver as claimable.
	Accepted

	// OutForDelivery indicates a driver claimed the order and is delivering
	// it. The claiming driver is bound to the order at this transition.
	OutForDelivery

	// Delivered indicates the bound driver completed the delivery.
	// This is a terminal state with no further transitions.
	Delivered
)

// getStatusStrings returns the wire strings for every Status value.
// The strings match the record store's stored representation.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Accepted:       "Accepted",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

// getValidStatusStrings returns only the statuses an order may carry.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		Accepted:       "Accepted",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

// transitionRoles is the authoritative transition table: every legal edge
// keyed by (from, to), valued with the single role allowed to traverse it.
func transitionRoles() map[[2]Status]actor.Role {
	return map[[2]Status]actor.Role{
		{Pending, Accepted}:         actor.RestaurantOwner,
		{Accepted, OutForDelivery}:  actor.Driver,
		{OutForDelivery, Delivered}: actor.Driver,
	}
}

// StatusFromString parses the stored representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status is one of the four defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the stored representation of the status.
// Implements fmt.Stringer; safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// RequiredRole returns the role allowed to traverse the edge from s to
// target. Returns ErrInvalidTransition when no such edge exists: wrong
// source state, non-adjacent target, or an undefined status.
func (s Status) RequiredRole(target Status) (actor.Role, error) {
	role, ok := transitionRoles()[[2]Status{s, target}]
	if !ok {
		return actor.Unknown, fmt.Errorf(
			"%w: %s -> %s", ErrInvalidTransition, s, target,
		)
	}
	return role, nil
}

// Accept transitions the status to Accepted.
// Only valid from Pending.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, Accepted)
	}
	return Accepted, nil
}

// StartDelivery transitions the status to OutForDelivery.
// Only valid from Accepted; the caller binds the claiming driver as part of
// the same transition.
func (s Status) StartDelivery() (Status, error) {
	if s != Accepted {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, OutForDelivery)
	}
	return OutForDelivery, nil
}

// CompleteDelivery transitions the status to Delivered.
// Only valid from OutForDelivery.
func (s Status) CompleteDelivery() (Status, error) {
	if s != OutForDelivery {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, Delivered)
	}
	return Delivered, nil
}

// ValidateCanHaveDriver validates consistency between a status and the
// presence of a driver binding when restoring orders from persistence.
//
// Pending and Accepted orders must not carry a driver; OutForDelivery and
// Delivered orders must.
func (s Status) ValidateCanHaveDriver(driver bool) error {
	if driver && s != OutForDelivery && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a driver", s),
		)
	}

	if !driver && (s == OutForDelivery || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no driver", s),
		)
	}

	return nil
}
