package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creativecamper/creativecamper-server/internal/repository"
)

// UserStore is the slice of the user repository the handlers need. It is
// satisfied by *repository.UserRepo; tests supply fakes.
type UserStore interface {
	Create(ctx context.Context, email, name, photoURL, role string) (uint64, error)
	GetByEmail(ctx context.Context, email string) (repository.User, error)
	RoleOf(ctx context.Context, email string) (string, error)
	UpdateRole(ctx context.Context, email, role string) (int64, error)
	ListAll(ctx context.Context) ([]repository.User, error)
}

// UserHandler bundles dependencies for user endpoints.
type UserHandler struct {
	Users UserStore
}

func NewUserHandler(u UserStore) *UserHandler {
	return &UserHandler{Users: u}
}

// ----- DTOs -----

type registerReq struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
}

type roleUpdateReq struct {
	Role string `json:"role"`
}

// Register handles POST /users. Registration is idempotent on email: the
// first call stores the user, a repeat call answers with an already-exists
// marker and leaves the stored record untouched.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}
	// Self-registration never grants a privileged role; everyone starts as a
	// student and promotions go through the role-update endpoint.
	role := repository.RoleStudent

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Email, req.Name, req.PhotoURL, role)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusOK, echo.Map{"message": "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		// The insert went through; fall back to echoing what we know.
		return c.JSON(http.StatusCreated, echo.Map{"id": uid, "email": req.Email, "role": role})
	}
	return c.JSON(http.StatusCreated, u)
}

// List handles GET /users (admin only) and returns every registered user.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateRole handles PATCH /users/role/:email (admin only). The new role must
// belong to the closed role set.
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req roleUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	role := strings.ToLower(strings.TrimSpace(req.Role))
	switch role {
	case repository.RoleStudent, repository.RoleInstructor, repository.RoleAdmin:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	n, err := h.Users.UpdateRole(ctx, c.Param("email"), role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": n})
}

// CheckAdmin handles GET /users/admin/:email. The self guard has already
// verified that the caller asks about themselves; an unknown user simply has
// no role.
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	return h.checkRole(c, repository.RoleAdmin, "admin")
}

// CheckInstructor handles GET /users/instructor/:email.
func (h *UserHandler) CheckInstructor(c echo.Context) error {
	return h.checkRole(c, repository.RoleInstructor, "instructor")
}

// CheckStudent handles GET /users/student/:email.
func (h *UserHandler) CheckStudent(c echo.Context) error {
	return h.checkRole(c, repository.RoleStudent, "student")
}

func (h *UserHandler) checkRole(c echo.Context, role, field string) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	got, err := h.Users.RoleOf(ctx, c.Param("email"))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusOK, echo.Map{field: false})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{field: got == role})
}
