package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fumer/blog-platform-api/internal/core/domain"
	"github.com/fumer/blog-platform-api/internal/core/ports"
)

// userContextKey is where the resolved identity lives on the echo context.
const userContextKey = "user"

// Auth validates the bearer token, resolves it to a user record, and injects
// the sanitized user into the request context. Status split:
//
//	missing credential            → 401
//	malformed/expired/bad token   → 403
//	valid token, unknown identity → 401
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "access denied, no token provided")
			}

			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrInvalidToken):
					return echo.NewHTTPError(http.StatusForbidden, "invalid token")
				case errors.Is(err, domain.ErrUserNotFound):
					return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
				}
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// OptionalAuth performs the same decode-and-resolve as Auth but never blocks
// the request: any failure leaves the context anonymous so public read routes
// can serve logged-in and logged-out users from one handler.
func OptionalAuth(auth ports.AuthService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return next(c)
			}

			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				log.Debug().Err(err).Str("path", c.Path()).Msg("optional auth failed, continuing anonymous")
				return next(c)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the identity resolved by Auth/OptionalAuth, or nil when
// the request is anonymous.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
