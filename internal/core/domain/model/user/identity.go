package user

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

// ErrIdentityIsNotConstructed is returned when an Identity was not created
// through the NewIdentity factory method.
var ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity constructor")

// Identity is the resolved result of a session lookup: who the caller is and
// which role they hold. The core reads nothing else from the identity
// subsystem. Identity is immutable and safe to copy.
type Identity struct {
	id   kernel.UUID
	role Role

	isConstructed bool
}

// NewIdentity creates a validated Identity from a user id and role.
func NewIdentity(id kernel.UUID, role Role) (Identity, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Identity{}, err
	}

	return Identity{
		id:            id,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the Identity was created via NewIdentity.
func (i Identity) Validate() error {
	if !i.isConstructed {
		return ErrIdentityIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (i Identity) ID() kernel.UUID {
	return i.id
}

// Role returns the user's role.
func (i Identity) Role() Role {
	return i.role
}

// Is reports whether the identity holds the given role.
func (i Identity) Is(role Role) bool {
	return i.role == role
}
