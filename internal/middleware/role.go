package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creativecamper/creativecamper-server/internal/repository"
)

// RoleSource answers "what role does this email have right now". It is
// satisfied by *repository.UserRepo; tests supply fakes.
type RoleSource interface {
	RoleOf(ctx context.Context, email string) (string, error)
}

// RequireRole returns a middleware that enforces that the authenticated
// caller's stored role matches the given role. The email comes from the
// context set by JWTAuth; the role comes from a fresh store lookup on every
// request, so promotions and demotions take effect immediately and token
// claims are never trusted for authorization. Requests from unknown users or
// users with a different role are aborted with 403 Forbidden.
func RequireRole(src RoleSource, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := c.Get(ContextEmailKey).(string)
			if !ok || email == "" {
				return c.JSON(http.StatusForbidden, echo.Map{"error": true, "message": "forbidden access"})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			got, err := src.RoleOf(ctx, email)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return c.JSON(http.StatusForbidden, echo.Map{"error": true, "message": "forbidden access"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
			}
			if got != role {
				return c.JSON(http.StatusForbidden, echo.Map{"error": true, "message": "forbidden access"})
			}
			return next(c)
		}
	}
}
