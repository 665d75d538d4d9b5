package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creativecamper/creativecamper-server/internal/repository"
)

// SelectionStore is the slice of the selection repository the handlers
// need. It is satisfied by *repository.SelectedClassRepo; tests supply
// fakes.
type SelectionStore interface {
	Create(ctx context.Context, classID uint64, email string) (uint64, error)
	ListByEmail(ctx context.Context, email string) ([]repository.SelectedClass, error)
	Delete(ctx context.Context, id uint64) (int64, error)
}

// SelectedClassHandler bundles dependencies for the selection (cart)
// endpoints.
type SelectedClassHandler struct {
	Selections SelectionStore
}

func NewSelectedClassHandler(s SelectionStore) *SelectedClassHandler {
	return &SelectedClassHandler{Selections: s}
}

type createSelectionReq struct {
	ClassID uint64 `json:"classId"`
	Email   string `json:"email"`
}

// List handles GET /selectedClasses?email=; the self guard has already
// pinned the query email to the token.
func (h *SelectedClassHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	selections, err := h.Selections.ListByEmail(ctx, c.QueryParam("email"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, selections)
}

// Create handles POST /selectedClasses. The store's unique key on class_id
// decides the winner when two students grab the same class at once; the
// loser is told the class is already selected.
func (h *SelectedClassHandler) Create(c echo.Context) error {
	var req createSelectionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.ClassID == 0 || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "classId/email required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Selections.Create(ctx, req.ClassID, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadySelected) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": true, "message": "Already Selected"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	return c.JSON(http.StatusCreated, repository.SelectedClass{
		ID:      id,
		ClassID: req.ClassID,
		Email:   req.Email,
	})
}

// Delete handles DELETE /selectedClasses/:id.
func (h *SelectedClassHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	n, err := h.Selections.Delete(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": n})
}
