package router

import (
	"github.com/labstack/echo/v4"

	"github.com/creativecamper/creativecamper-server/internal/handler"
	"github.com/creativecamper/creativecamper-server/internal/middleware"
	"github.com/creativecamper/creativecamper-server/internal/repository"
)

// RegisterUsers registers the user endpoints. Registration is open; listing
// and role updates are admin-scoped; the role-check lookups are restricted
// to the caller's own email.
func RegisterUsers(e *echo.Echo, h *handler.UserHandler, roles middleware.RoleSource, jwtSecret string) {
	auth := middleware.JWTAuth(jwtSecret)
	admin := middleware.RequireRole(roles, repository.RoleAdmin)
	self := middleware.RequireSelf("email")

	e.POST("/users", h.Register)
	e.GET("/users", h.List, auth, admin)
	e.PATCH("/users/role/:email", h.UpdateRole, auth, admin)

	// Self-lookup endpoints: the guard compares the path email to the token
	// email and terminates with 403 on mismatch before the handler runs.
	e.GET("/users/admin/:email", h.CheckAdmin, auth, self)
	e.GET("/users/instructor/:email", h.CheckInstructor, auth, self)
	e.GET("/users/student/:email", h.CheckStudent, auth, self)
}
