package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/creativecamper/creativecamper-server/internal/handler"
)

// RegisterRoutes registers routes that carry no guards and no dependencies:
// the root banner the front end pings, and a health check for load
// balancers and monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the token-issuing endpoint. It is deliberately
// unauthenticated: identity is asserted by the front end's auth provider,
// and the returned token is what every guarded endpoint verifies.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/jwt", a.IssueToken)
}
