package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetUsersQueryIsNotConstructed = errors.New(
		"GetUsersQuery must be created via NewGetUsersQuery constructor",
	)
)

// GetUsersQuery retrieves user profiles, optionally narrowed to one role.
// This listing backs the administrative user management screen.
type GetUsersQuery struct {
	role   *user.Role
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates a query to list user profiles.
// A nil role means no role filtering. A non-positive limit falls back to
// the default page size.
func NewGetUsersQuery(role *user.Role, limit, offset int) (GetUsersQuery, error) {
	if role != nil {
		if err := role.Validate(); err != nil {
			return GetUsersQuery{}, err
		}
	}

	if offset < 0 {
		return GetUsersQuery{}, errs.NewValueIsInvalidError("offset")
	}

	return GetUsersQuery{
		role:   role,
		limit:  clampLimit(limit),
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// Role returns the optional role filter. Nil means all roles.
func (q GetUsersQuery) Role() *user.Role {
	return q.role
}

// Limit returns the page size.
func (q GetUsersQuery) Limit() int {
	return q.limit
}

// Offset returns the page offset.
func (q GetUsersQuery) Offset() int {
	return q.offset
}

// GetUsersQueryResponse is the user profile read model.
type GetUsersQueryResponse struct {
	ID        kernel.UUID
	Email     string
	FullName  string
	Role      string
	CreatedAt time.Time
}
