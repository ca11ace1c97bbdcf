package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-platform/internal/api/middleware"
	"github.com/bloghub/blog-platform/internal/core/domain"
)

// ctxUser extracts the authenticated identity attached by the Auth middleware.
// Presence proves the middleware ran; its absence on a protected route means
// the route was wired without authentication, which is a programming error
// reported as MISSING_TOKEN rather than a panic.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.IdentityKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrMissingToken
	}
	return user, nil
}

// ctxOptionalUser returns the authenticated identity when present and nil for
// anonymous callers on OptionalAuth routes.
func ctxOptionalUser(c echo.Context) *domain.User {
	user, _ := c.Get(middleware.IdentityKey).(*domain.User)
	return user
}
