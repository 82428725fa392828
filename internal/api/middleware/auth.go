package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/booking-system/internal/core/domain"
	"github.com/eventhub/booking-system/internal/core/ports"
)

// SubjectStore is the minimal lookup the guard needs to confirm a token's
// subject still exists.
type SubjectStore interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth extracts and verifies the bearer token, re-checks that the subject
// still exists, and injects the identity into the request context. Every
// verification failure maps to the same 401 so the response does not
// reveal which check rejected the token. The role comes from the token
// claims: a role change only takes effect once the user logs in again.
func Auth(tokens ports.TokenService, users SubjectStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// The token may outlive its subject; a deleted user must not
			// keep access until expiry.
			if _, err := users.FindByID(c.Request().Context(), claims.SubjectID); err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			c.Set("user_id", claims.SubjectID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
