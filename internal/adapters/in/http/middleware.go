package http

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// identityContextKey is where the authentication middleware stores the
// resolved identity in the echo context.
const identityContextKey = "identity"

// sessionCookieName is the fallback credential location for clients that do
// not send an Authorization header.
const sessionCookieName = "session_token"

// NewAuthenticationMiddleware resolves the request credential to an
// authenticated identity before the request reaches a handler.
//
// The credential is taken from the Authorization header (Bearer scheme) or,
// failing that, from the session cookie. The session store maps the token to
// a user id; the user repository supplies the role. Requests without a live
// session are rejected with 401 before any handler runs.
func NewAuthenticationMiddleware(sessions ports.SessionStore, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			requestCtx := ctx.Request().Context()

			userID, err := sessions.Resolve(requestCtx, sessionToken(ctx))
			if err != nil {
				return writeError(ctx, err)
			}

			role, err := users.GetRole(requestCtx, userID)
			if err != nil {
				if errors.Is(err, errs.ErrObjectNotFound) {
					return writeError(ctx, errs.NewUnauthorizedErrorWithCause(
						"no profile for session user", err))
				}
				return writeError(ctx, err)
			}

			identity, err := user.NewIdentity(userID, role)
			if err != nil {
				return writeError(ctx, errs.NewUnauthorizedErrorWithCause(
					"session resolved to an invalid identity", err))
			}

			ctx.Set(identityContextKey, identity)
			return next(ctx)
		}
	}
}

func sessionToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	if cookie, err := ctx.Cookie(sessionCookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// identityFromContext returns the identity stored by the authentication
// middleware, or nil when the request was not authenticated.
func identityFromContext(ctx echo.Context) *user.Identity {
	identity, ok := ctx.Get(identityContextKey).(user.Identity)
	if !ok {
		return nil
	}
	return &identity
}
