package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creativecamper/creativecamper-server/internal/queue"
	"github.com/creativecamper/creativecamper-server/internal/repository"
	queue_publisher "github.com/creativecamper/creativecamper-server/internal/service"
)

// ClassHandler bundles dependencies for class endpoints.
type ClassHandler struct {
	Classes *repository.ClassRepo
}

func NewClassHandler(cl *repository.ClassRepo) *ClassHandler {
	return &ClassHandler{Classes: cl}
}

// ----- DTOs -----

type createClassReq struct {
	Name            string  `json:"name"`
	Image           string  `json:"image"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `json:"instructorEmail"`
	AvailableSeats  uint32  `json:"availableSeats"`
	Price           float64 `json:"price"`
}

type statusUpdateReq struct {
	Status string `json:"status"`
}

type feedbackUpdateReq struct {
	Feedback string `json:"feedback"`
}

// ListApproved handles GET /classes, the public listing. Only approved
// classes are visible to guests.
func (h *ClassHandler) ListApproved(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	classes, err := h.Classes.ListApproved(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, classes)
}

// Create handles POST /classes (instructor only). The submitted class always
// enters the review pipeline as pending.
func (h *ClassHandler) Create(c echo.Context) error {
	var req createClassReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.InstructorEmail = strings.ToLower(strings.TrimSpace(req.InstructorEmail))
	if req.Name == "" || req.InstructorEmail == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/instructorEmail required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Classes.Create(ctx, repository.Class{
		Name:            req.Name,
		Image:           req.Image,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		AvailableSeats:  req.AvailableSeats,
		Price:           req.Price,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	cl, err := h.Classes.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusCreated, echo.Map{"id": id})
	}
	return c.JSON(http.StatusCreated, cl)
}

// Mine handles GET /myClasses?email= for instructors; the self guard has
// already pinned the query email to the token.
func (h *ClassHandler) Mine(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	classes, err := h.Classes.ListByInstructor(ctx, c.QueryParam("email"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, classes)
}

// ListAll handles GET /classes/all, the admin review listing.
func (h *ClassHandler) ListAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	classes, err := h.Classes.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, classes)
}

// UpdateStatus handles PATCH /classes/status/:id (admin only). After a
// successful update a review event is published so the instructor gets
// notified; publish failures are logged and never fail the request.
func (h *ClassHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req statusUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	switch status {
	case repository.StatusPending, repository.StatusApproved, repository.StatusDenied:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	n, err := h.Classes.UpdateStatus(ctx, id, status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	if n > 0 {
		if cl, err := h.Classes.GetByID(ctx, id); err == nil {
			ev := queue.ClassReviewedEvent{
				ClassID:         cl.ID,
				Name:            cl.Name,
				InstructorEmail: cl.InstructorEmail,
				Status:          cl.Status,
				ReviewedAt:      time.Now().UTC().Format(time.RFC3339),
			}
			if cl.Feedback != nil {
				ev.Feedback = *cl.Feedback
			}
			go func() {
				pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer pubCancel()
				if err := queue_publisher.PublishClassReviewed(pubCtx, ev); err != nil {
					log.Printf("publish class.reviewed failed: %v", err)
				}
			}()
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"updated": n})
}

// UpdateFeedback handles PATCH /classes/feedback/:id (admin only).
func (h *ClassHandler) UpdateFeedback(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req feedbackUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Feedback) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "feedback required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	n, err := h.Classes.UpdateFeedback(ctx, id, req.Feedback)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": n})
}
