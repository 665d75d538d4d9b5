package handler // declare the package name; contains HTTP handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root returns the plain-text banner served at the application root. The
// front end pings it to check that the API is reachable.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "CreativeCamper Server")
}

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
