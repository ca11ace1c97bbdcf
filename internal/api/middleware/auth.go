package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-platform/internal/api/metrics"
	"github.com/bloghub/blog-platform/internal/core/domain"
	"github.com/bloghub/blog-platform/internal/core/ports"
)

// IdentityKey is the echo context key under which the authenticated user is
// stored for the remainder of the request.
const IdentityKey = "auth_user"

// Auth validates the bearer token and resolves the caller's account. The user
// is re-read from the repository on every request, so role and account changes
// take effect on the next call. On success a *domain.User is attached to the
// context under IdentityKey.
func Auth(creds ports.CredentialService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolveIdentity(c, creds, users)
			if err != nil {
				return err
			}
			c.Set(IdentityKey, user)
			return next(c)
		}
	}
}

// OptionalAuth behaves like Auth but lets callers without any Authorization
// header through anonymously. A present-but-invalid token is still rejected.
func OptionalAuth(creds ports.CredentialService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return next(c)
			}
			user, err := resolveIdentity(c, creds, users)
			if err != nil {
				return err
			}
			c.Set(IdentityKey, user)
			return next(c)
		}
	}
}

func resolveIdentity(c echo.Context, creds ports.CredentialService, users ports.UserRepository) (*domain.User, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
		return nil, domain.ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
		return nil, domain.ErrMissingToken
	}

	claims, err := creds.ValidateToken(parts[1])
	if err != nil {
		metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
		return nil, domain.ErrTokenInvalid
	}

	data, err := creds.ExtractTokenData(claims)
	if err != nil {
		metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
		return nil, domain.ErrTokenInvalid
	}

	user, err := users.FindByID(c.Request().Context(), data.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AuthRejectionsTotal.WithLabelValues("user_not_found").Inc()
			return nil, domain.ErrAuthUserUnknown
		}
		return nil, err
	}
	return user, nil
}
