package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireSelf returns a middleware that only lets a request through when the
// email path parameter matches the authenticated caller's email. A mismatch
// terminates the request with 403; the handler never runs.
func RequireSelf(param string) echo.MiddlewareFunc {
	return requireSelf(func(c echo.Context) string { return c.Param(param) })
}

// RequireSelfQuery is RequireSelf for endpoints that take the email as a
// query parameter instead of a path segment.
func RequireSelfQuery(name string) echo.MiddlewareFunc {
	return requireSelf(func(c echo.Context) string { return c.QueryParam(name) })
}

func requireSelf(extract func(echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenEmail, ok := c.Get(ContextEmailKey).(string)
			if !ok || tokenEmail == "" {
				return c.JSON(http.StatusForbidden, echo.Map{"error": true, "message": "forbidden access"})
			}
			requested := strings.ToLower(strings.TrimSpace(extract(c)))
			if requested == "" || requested != tokenEmail {
				return c.JSON(http.StatusForbidden, echo.Map{"error": true, "message": "forbidden access"})
			}
			return next(c)
		}
	}
}
