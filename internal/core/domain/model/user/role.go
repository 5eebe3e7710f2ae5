package user

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role represents what a user is allowed to do in the marketplace.
// It is a value object backed by the string stored in the profiles table.
type Role string

const (
	// RoleAdmin may manage users, products, and any order.
	RoleAdmin Role = "admin"

	// RoleVendor lists products and sees orders containing them.
	RoleVendor Role = "vendor"

	// RoleCustomer places orders against the catalog.
	RoleCustomer Role = "customer"

	// RoleDelivery claims and progresses orders through delivery.
	RoleDelivery Role = "delivery"
)

// getValidRoles returns the set of roles accepted from external sources.
func getValidRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleAdmin:    {},
		RoleVendor:   {},
		RoleCustomer: {},
		RoleDelivery: {},
	}
}

// RoleFromString parses a role from its persisted or request representation.
// Returns a ValueIsInvalidError for anything outside the four known roles.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of the four known values.
func (r Role) Validate() error {
	if _, ok := getValidRoles()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// String returns the persisted representation of the role.
func (r Role) String() string {
	return string(r)
}
