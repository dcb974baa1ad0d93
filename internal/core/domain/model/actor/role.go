package actor

import (
	"fmt"

	"mercurydash/internal/pkg/errs"
)

// Role identifies which side of the marketplace an actor belongs to.
// It is a closed value object: only the three marketplace roles are valid,
// and role checks switch over them exhaustively.
type Role int

const (
	// Unknown represents an invalid or undefined role.
	// The zero value catches uninitialized Role fields.
	Unknown Role = iota

	// Customer places orders and tracks their own.
	Customer

	// Driver claims accepted orders and completes deliveries.
	Driver

	// RestaurantOwner manages a restaurant's menu and accepts its orders.
	RestaurantOwner
)

// getRoleStrings returns the wire strings for every Role value,
// including Unknown for display purposes.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown:         "unknown",
		Customer:        "customer",
		Driver:          "driver",
		RestaurantOwner: "restaurant_owner",
	}
}

// getValidRoleStrings returns only the roles an actor may carry.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Role]string{
		Customer:        "customer",
		Driver:          "driver",
		RestaurantOwner: "restaurant_owner",
	}
}

// RoleFromString parses the wire representation of a role
// ("customer", "driver", "restaurant_owner").
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks that the Role is one of the three marketplace roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire representation of the role.
// Implements fmt.Stringer; safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
