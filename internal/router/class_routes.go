package router

import (
	"github.com/labstack/echo/v4"

	"github.com/creativecamper/creativecamper-server/internal/handler"
	"github.com/creativecamper/creativecamper-server/internal/middleware"
	"github.com/creativecamper/creativecamper-server/internal/repository"
)

// RegisterClasses registers the class endpoints. The public listing carries
// no guard; submission is instructor-scoped; review operations (full
// listing, status, feedback) are admin-scoped.
func RegisterClasses(e *echo.Echo, h *handler.ClassHandler, roles middleware.RoleSource, jwtSecret string) {
	auth := middleware.JWTAuth(jwtSecret)
	admin := middleware.RequireRole(roles, repository.RoleAdmin)
	instructor := middleware.RequireRole(roles, repository.RoleInstructor)

	e.GET("/classes", h.ListApproved)
	e.POST("/classes", h.Create, auth, instructor)
	e.GET("/myClasses", h.Mine, auth, middleware.RequireSelfQuery("email"))
	e.GET("/classes/all", h.ListAll, auth, admin)
	e.PATCH("/classes/status/:id", h.UpdateStatus, auth, admin)
	e.PATCH("/classes/feedback/:id", h.UpdateFeedback, auth, admin)
}
