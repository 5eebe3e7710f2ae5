package services

import (
	"fmt"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// Authorize is the role authorization guard invoked before every protected
// operation. A nil identity fails with an UnauthorizedError. With an empty
// required set any authenticated identity passes; otherwise the identity's
// role must be a member of the required set or the guard fails with a
// ForbiddenError. Authorize is pure and side-effect-free.
func Authorize(identity *user.Identity, required ...user.Role) error {
	if identity == nil {
		return errs.NewUnauthorizedError("no authenticated identity")
	}
	if err := identity.Validate(); err != nil {
		return errs.NewUnauthorizedErrorWithCause("no authenticated identity", err)
	}

	if len(required) == 0 {
		return nil
	}

	for _, role := range required {
		if identity.Is(role) {
			return nil
		}
	}

	return errs.NewForbiddenError(fmt.Sprintf("role %s is not permitted", identity.Role()))
}
