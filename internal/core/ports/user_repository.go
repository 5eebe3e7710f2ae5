package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// UserRepository reads and writes the role side of user profiles. Profiles
// themselves are owned by the identity subsystem; the core only needs the
// role lookup and the admin role-assignment write.
type UserRepository interface {
	// GetRole returns the role recorded for the given user.
	GetRole(ctx context.Context, id kernel.UUID) (user.Role, error)

	// UpdateRole records a new role for the given user.
	UpdateRole(ctx context.Context, id kernel.UUID, role user.Role) error
}

// SessionStore resolves a request credential to a user id. Sessions are
// minted by the external identity provider; this store only reads them.
type SessionStore interface {
	// Resolve returns the user id for a live session token, or an
	// UnauthorizedError when the token is unknown or expired.
	Resolve(ctx context.Context, token string) (kernel.UUID, error)
}
