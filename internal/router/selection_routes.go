package router

import (
	"github.com/labstack/echo/v4"

	"github.com/creativecamper/creativecamper-server/internal/handler"
	"github.com/creativecamper/creativecamper-server/internal/middleware"
)

// RegisterSelections registers the selection (cart) endpoints. All of them
// require a valid token; the listing is additionally restricted to the
// caller's own email.
func RegisterSelections(e *echo.Echo, h *handler.SelectedClassHandler, jwtSecret string) {
	auth := middleware.JWTAuth(jwtSecret)

	e.GET("/selectedClasses", h.List, auth, middleware.RequireSelfQuery("email"))
	e.POST("/selectedClasses", h.Create, auth)
	e.DELETE("/selectedClasses/:id", h.Delete, auth)
}
